package puzzlebox

// HashCode is the polynomial string hash with multiplier 31 over the code
// points of s, wrapping as a 32-bit two's-complement integer. It is the hash
// code-pad tables are keyed by.
func HashCode(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}

// Response is content shown when a code is submitted.
type Response struct {
	Kind    ContentKind
	Payload string
	// Sound, when set, is played alongside the content.
	Sound string
}

// NoResponse is returned for codes that have no table entry.
var NoResponse = Response{}

// IsNone reports whether r has nothing to present. A response with
// ContentNone may still carry a Sound. Use the bool from Dispatch to tell an
// unknown code from a silent entry.
func (r Response) IsNone() bool {
	return r.Kind == ContentNone
}

// TextResponse is shorthand for a plain text Response.
func TextResponse(text string) Response {
	return Response{Kind: ContentText, Payload: text}
}

// CodeTable maps code hashes to responses. An entry with more than one
// response is a sequence: repeated submissions walk through it and stay on
// the last element.
type CodeTable map[int32][]Response

// Add registers responses for the hash of code.
func (t CodeTable) Add(code string, responses ...Response) {
	t[HashCode(code)] = responses
}

// AddHash registers responses for a precomputed hash.
func (t CodeTable) AddHash(hash int32, responses ...Response) {
	t[hash] = responses
}

// Dispatch returns the response for hash, advancing progress for sequences.
// ok is false when the table has no entry for hash.
func (t CodeTable) Dispatch(hash int32, progress *CodeProgress) (resp Response, ok bool) {
	seq, ok := t[hash]
	if !ok || len(seq) == 0 {
		return NoResponse, false
	}
	return progress.Next(hash, seq), true
}

// CodeProgress remembers how far each hash has advanced through its response
// sequence. Indices start at 0, only ever increase, and stop at the last
// element. It lives as long as the scene that owns it.
type CodeProgress struct {
	index map[int32]int
}

// NewCodeProgress creates an empty progress store.
func NewCodeProgress() *CodeProgress {
	return &CodeProgress{index: make(map[int32]int)}
}

// Index returns the current progress index for hash.
func (p *CodeProgress) Index(hash int32) int {
	return p.index[hash]
}

// Next returns the element of seq at hash's progress index and advances the
// index unless it already points at the last element.
func (p *CodeProgress) Next(hash int32, seq []Response) Response {
	if len(seq) == 0 {
		return NoResponse
	}
	i := min(p.index[hash], len(seq)-1)
	if i < len(seq)-1 {
		p.index[hash] = i + 1
	}
	return seq[i]
}

// Reset forgets all progress.
func (p *CodeProgress) Reset() {
	clear(p.index)
}
