package puzzlebox

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every scene configuration validation failure.
var ErrInvalidConfig = errors.New("invalid scene config")

// SceneConfig describes a scene's items and code pads in YAML. Behavior such
// as collision reactions is attached in code after Apply.
type SceneConfig struct {
	Title        string       `yaml:"title"`
	Width        float64      `yaml:"width"`
	Height       float64      `yaml:"height"`
	Origin       Vec2Config   `yaml:"origin"`
	ScrollPolicy string       `yaml:"scrollPolicy"` // "force-drop" or "compensate"
	WheelStep    float64      `yaml:"wheelStep"`
	Items        []ItemConfig `yaml:"items"`
	Pads         []PadConfig  `yaml:"pads"`
}

// Vec2Config is a YAML point.
type Vec2Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ItemConfig describes one item spawned by Apply.
type ItemConfig struct {
	ID        string  `yaml:"id"`
	Image     string  `yaml:"image"`
	Alt       string  `yaml:"alt"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`  // 0 means the image's natural size
	Height    float64 `yaml:"height"` // 0 means the image's natural size
	Z         int     `yaml:"z"`
	Grabbable *bool   `yaml:"grabbable"` // default true
	Hidden    bool    `yaml:"hidden"`
}

// PadConfig describes one code pad.
type PadConfig struct {
	Name           string       `yaml:"name"`
	Format         string       `yaml:"format"` // "phone", "keypad" or "custom"
	Length         int          `yaml:"length"`
	Separator      string       `yaml:"separator"`
	SeparatorAfter []int        `yaml:"separatorAfter"`
	SuccessCode    string       `yaml:"successCode"`
	Codes          []CodeConfig `yaml:"codes"`
}

// CodeConfig maps one code, or its precomputed hash, to a response sequence.
type CodeConfig struct {
	Code      string           `yaml:"code"`
	Hash      *int32           `yaml:"hash"`
	Responses []ResponseConfig `yaml:"responses"`
}

// ResponseConfig is one response in a sequence.
type ResponseConfig struct {
	Kind    string `yaml:"kind"` // "text", "image" or "markup"
	Payload string `yaml:"payload"`
	Sound   string `yaml:"sound"`
}

// LoadSceneConfig reads and validates a scene configuration file.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config %s: %w", path, err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig parses and validates YAML scene configuration.
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := validateSceneConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *SceneConfig) applyDefaults() {
	if c.Width == 0 {
		c.Width = BaseWidth
	}
	if c.Height == 0 {
		c.Height = BaseHeight
	}
	if c.WheelStep == 0 {
		c.WheelStep = defaultWheelStep
	}
	for i := range c.Pads {
		p := &c.Pads[i]
		switch p.Format {
		case "", "phone":
			p.Format = "phone"
			p.Length = PhoneFormat.Length
			p.Separator = string(PhoneFormat.Separator)
			p.SeparatorAfter = PhoneFormat.SeparatorAfter
		case "keypad":
			p.Length = KeypadFormat.Length
		}
	}
}

func validateSceneConfig(c *SceneConfig) error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidConfig, c.Width, c.Height)
	}
	if _, err := ParseScrollPolicy(c.ScrollPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	ids := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		if it.ID == "" {
			return fmt.Errorf("%w: items[%d]: id cannot be empty", ErrInvalidConfig, i)
		}
		if ids[it.ID] {
			return fmt.Errorf("%w: items[%d]: duplicate id %q", ErrInvalidConfig, i, it.ID)
		}
		ids[it.ID] = true
		if it.Width < 0 || it.Height < 0 {
			return fmt.Errorf("%w: item %q: negative size", ErrInvalidConfig, it.ID)
		}
	}

	names := make(map[string]bool, len(c.Pads))
	for i, p := range c.Pads {
		if p.Name == "" {
			return fmt.Errorf("%w: pads[%d]: name cannot be empty", ErrInvalidConfig, i)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: pads[%d]: duplicate name %q", ErrInvalidConfig, i, p.Name)
		}
		names[p.Name] = true
		if p.Format != "phone" && p.Format != "keypad" && p.Format != "custom" {
			return fmt.Errorf("%w: pad %q: unknown format %q", ErrInvalidConfig, p.Name, p.Format)
		}
		if p.Length <= 0 {
			return fmt.Errorf("%w: pad %q: length must be > 0, got %d", ErrInvalidConfig, p.Name, p.Length)
		}
		if len([]rune(p.Separator)) > 1 {
			return fmt.Errorf("%w: pad %q: separator must be one character", ErrInvalidConfig, p.Name)
		}
		for j, code := range p.Codes {
			if (code.Code == "") == (code.Hash == nil) {
				return fmt.Errorf("%w: pad %q codes[%d]: set exactly one of code or hash", ErrInvalidConfig, p.Name, j)
			}
			if len(code.Responses) == 0 {
				return fmt.Errorf("%w: pad %q codes[%d]: responses cannot be empty", ErrInvalidConfig, p.Name, j)
			}
			for k, r := range code.Responses {
				if _, err := ParseContentKind(r.Kind); err != nil {
					return fmt.Errorf("%w: pad %q codes[%d] responses[%d]: %v", ErrInvalidConfig, p.Name, j, k, err)
				}
			}
		}
	}
	return nil
}

// Apply configures s from c: title, viewport, scroll policy, then items in
// file order, then code pads.
func (c *SceneConfig) Apply(s *Scene) error {
	policy, err := ParseScrollPolicy(c.ScrollPolicy)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	s.SetTitle(c.Title)
	s.viewport.Width = c.Width
	s.viewport.Height = c.Height
	s.SetOrigin(c.Origin.X, c.Origin.Y)
	s.SetScrollPolicy(policy)
	s.SetWheelStep(c.WheelStep)

	for _, ic := range c.Items {
		if err := s.Spawn(ic.newItem()); err != nil {
			return err
		}
	}
	for _, pc := range c.Pads {
		pad, err := s.NewCodePad(pc.Name, pc.format(), pc.table())
		if err != nil {
			return err
		}
		if pc.SuccessCode != "" {
			pad.SetSuccessCode(pc.SuccessCode)
		}
	}
	return nil
}

func (ic ItemConfig) newItem() *Item {
	it := NewItem(ic.ID, ic.X, ic.Y)
	it.Image = ic.Image
	it.Alt = ic.Alt
	it.zIndex = ic.Z
	it.visible = !ic.Hidden
	if ic.Grabbable != nil {
		it.grabbable = *ic.Grabbable
	}
	if ic.Width > 0 || ic.Height > 0 {
		it.size = Vec2{X: ic.Width, Y: ic.Height}
		it.hasSize = true
	}
	return it
}

func (pc PadConfig) format() CodeFormat {
	f := CodeFormat{Length: pc.Length, SeparatorAfter: pc.SeparatorAfter}
	if r := []rune(pc.Separator); len(r) == 1 {
		f.Separator = r[0]
	}
	return f
}

func (pc PadConfig) table() CodeTable {
	t := CodeTable{}
	for _, cc := range pc.Codes {
		responses := make([]Response, len(cc.Responses))
		for i, rc := range cc.Responses {
			kind, _ := ParseContentKind(rc.Kind) // checked by validateSceneConfig
			responses[i] = Response{Kind: kind, Payload: rc.Payload, Sound: rc.Sound}
		}
		if cc.Hash != nil {
			t.AddHash(*cc.Hash, responses...)
		} else {
			t.Add(cc.Code, responses...)
		}
	}
	return t
}
