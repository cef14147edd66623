package ratio

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var (
	_ fmt.Stringer             = Ratio{}
	_ encoding.TextMarshaler   = Ratio{}
	_ encoding.TextUnmarshaler = (*Ratio)(nil)
	_ driver.Valuer            = Ratio{}
	_ sql.Scanner              = (*Ratio)(nil)
	_ yaml.Marshaler           = Ratio{}
	_ yaml.Unmarshaler         = (*Ratio)(nil)
	_ msgpack.CustomEncoder    = Ratio{}
	_ msgpack.CustomDecoder    = (*Ratio)(nil)
)

// String formats r as "Num/Div".
func (r Ratio) String() string {
	return string(r.appendText(nil))
}

// appendText appends the "Num/Div" form of r to b.
func (r Ratio) appendText(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(r.Num), 10)
	b = append(b, '/')
	return strconv.AppendUint(b, uint64(r.Div), 10)
}

// Parse parses "num/div" or a bare "num", which means num/1.
// Surrounding whitespace is ignored. "0/0" parses to Undefined.
func Parse(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	numStr, divStr, ok := strings.Cut(s, "/")
	if !ok {
		divStr = "1"
	}

	num, err := parseField(numStr)
	if err != nil {
		return Ratio{}, fmt.Errorf("ratio: parse %q: %w", s, err)
	}
	div, err := parseField(divStr)
	if err != nil {
		return Ratio{}, fmt.Errorf("ratio: parse %q: %w", s, err)
	}
	return Ratio{Num: num, Div: div}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Ratio {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseField(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrSyntax
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, fmt.Errorf("%w: %s out of uint32 range", ErrSyntax, s)
		}
		return 0, ErrSyntax
	}
	return uint32(n), nil
}

func (r Ratio) MarshalText() ([]byte, error) {
	return r.appendText(nil), nil
}

func (r *Ratio) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores r as its text form.
func (r Ratio) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan reads a text or integer column. NULL scans as Undefined.
func (r *Ratio) Scan(value any) error {
	var s sql.NullString
	if err := s.Scan(value); err != nil {
		return fmt.Errorf("ratio: cannot scan %T into Ratio: %w", value, err)
	}
	if !s.Valid {
		*r = Undefined
		return nil
	}
	return r.UnmarshalText([]byte(s.String))
}

func (r Ratio) MarshalYAML() (any, error) {
	return r.String(), nil
}

// UnmarshalYAML accepts a scalar ("3/4", "3") or a mapping with num and div
// keys.
func (r *Ratio) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := Parse(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*r = parsed
		return nil
	case yaml.MappingNode:
		var fields struct {
			Num *uint32 `yaml:"num"`
			Div *uint32 `yaml:"div"`
		}
		if err := value.Decode(&fields); err != nil {
			return err
		}
		if fields.Num == nil || fields.Div == nil {
			return fmt.Errorf("line %d: %w: num and div are required", value.Line, ErrSyntax)
		}
		*r = Ratio{Num: *fields.Num, Div: *fields.Div}
		return nil
	default:
		return fmt.Errorf("line %d: %w: unexpected YAML node", value.Line, ErrSyntax)
	}
}

// EncodeMsgpack writes r as a two element array [Num, Div].
func (r Ratio) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint32(r.Num); err != nil {
		return err
	}
	return enc.EncodeUint32(r.Div)
}

func (r *Ratio) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("ratio: msgpack array has %d elements, expected 2", n)
	}
	num, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	div, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	*r = Ratio{Num: num, Div: div}
	return nil
}
