package puzzlebox

import (
	"fmt"
	"slices"
)

// CodeFormat describes the input a code pad accepts.
type CodeFormat struct {
	// Length is the number of characters, separators included, a full
	// input has.
	Length int
	// Separator is inserted automatically once the buffer reaches one of
	// the SeparatorAfter lengths. Zero disables separators.
	Separator      rune
	SeparatorAfter []int
}

var (
	// PhoneFormat is a rotary phone number such as "123-456-7".
	PhoneFormat = CodeFormat{Length: 9, Separator: '-', SeparatorAfter: []int{3, 7}}
	// KeypadFormat is a four digit door code.
	KeypadFormat = CodeFormat{Length: 4}
)

// SubmitContext carries the result of a full code submission.
type SubmitContext struct {
	Scene    *Scene
	Pad      *CodePad
	Code     string
	Hash     int32
	Response Response
	// Matched is false when the table has no entry for Hash.
	Matched bool
}

// CodePad buffers digit input for one in-world puzzle and dispatches full
// inputs through a CodeTable.
type CodePad struct {
	name   string
	format CodeFormat
	table  CodeTable
	buf    []rune

	successHash int32
	hasSuccess  bool

	// OnResponse fires after every full submission, matched or not.
	OnResponse func(SubmitContext)
	// OnSuccess fires when the submitted hash equals the success code.
	OnSuccess func(SubmitContext)

	scene *Scene
}

// NewCodePad creates a code pad registered under name. Progress through
// response sequences is stored on the scene.
func (s *Scene) NewCodePad(name string, format CodeFormat, table CodeTable) (*CodePad, error) {
	if _, ok := s.pads[name]; ok {
		return nil, s.misuse(fmt.Errorf("code pad %q: %w", name, ErrDuplicateID))
	}
	if table == nil {
		table = CodeTable{}
	}
	pad := &CodePad{
		name:   name,
		format: format,
		table:  table,
		buf:    make([]rune, 0, format.Length),
		scene:  s,
	}
	s.pads[name] = pad
	return pad, nil
}

// Pad returns the code pad registered under name.
func (s *Scene) Pad(name string) (*CodePad, error) {
	pad, ok := s.pads[name]
	if !ok {
		return nil, s.misuse(fmt.Errorf("code pad %q: %w", name, ErrItemNotFound))
	}
	return pad, nil
}

// Name returns the pad's registered name.
func (c *CodePad) Name() string {
	return c.name
}

// Table returns the pad's response table.
func (c *CodePad) Table() CodeTable {
	return c.table
}

// SetSuccessCode sets the code whose submission fires OnSuccess.
func (c *CodePad) SetSuccessCode(code string) {
	c.SetSuccessHash(HashCode(code))
}

// SetSuccessHash sets the hash whose submission fires OnSuccess.
func (c *CodePad) SetSuccessHash(h int32) {
	c.successHash = h
	c.hasSuccess = true
}

// Input returns the buffered input.
func (c *CodePad) Input() string {
	return string(c.buf)
}

// Full reports whether the buffer holds a complete input.
func (c *CodePad) Full() bool {
	return len(c.buf) >= c.format.Length
}

// Press appends a digit. It returns false when the buffer is full or r is not
// a decimal digit.
func (c *CodePad) Press(r rune) bool {
	if r < '0' || r > '9' || c.Full() {
		return false
	}
	c.buf = append(c.buf, r)
	if c.format.Separator != 0 && !c.Full() && slices.Contains(c.format.SeparatorAfter, len(c.buf)) {
		c.buf = append(c.buf, c.format.Separator)
	}
	return true
}

// Delete removes the last digit. A trailing separator belongs to the digit
// before it and is removed together with it.
func (c *CodePad) Delete() bool {
	n := len(c.buf)
	if n == 0 {
		return false
	}
	if c.format.Separator != 0 && c.buf[n-1] == c.format.Separator && n >= 2 {
		n--
	}
	c.buf = c.buf[:n-1]
	return true
}

// Clear empties the buffer.
func (c *CodePad) Clear() {
	c.buf = c.buf[:0]
}

// Submit dispatches a full input. Short inputs are ignored and return
// (NoResponse, false), leaving the buffer untouched. A full input is hashed,
// looked up, presented, and cleared.
func (c *CodePad) Submit() (Response, bool) {
	if !c.Full() {
		return NoResponse, false
	}
	code := string(c.buf)
	c.buf = c.buf[:0]

	s := c.scene
	hash := HashCode(code)
	resp, matched := c.table.Dispatch(hash, s.progress)
	ctx := SubmitContext{Scene: s, Pad: c, Code: code, Hash: hash, Response: resp, Matched: matched}
	s.debugf("pad %q submit %q (hash %d): matched=%v %s", c.name, code, hash, matched, resp.Kind)

	if matched {
		s.Present(resp.Kind, resp.Payload)
		if resp.Sound != "" {
			s.PlaySound(resp.Sound)
		}
	}
	if c.OnResponse != nil {
		c.OnResponse(ctx)
	}
	if c.hasSuccess && hash == c.successHash && c.OnSuccess != nil {
		c.OnSuccess(ctx)
	}
	s.emit(ItemEvent{Type: EventSubmit, ItemID: c.name, Code: code, Hash: hash})
	return resp, true
}
