package edit

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dshills/inkwell/internal/engine/cursor"
	"github.com/dshills/inkwell/internal/engine/nav"
	"github.com/dshills/inkwell/internal/engine/position"
)

// Normalization names the Unicode normal form applied to inserted text.
type Normalization string

// Supported normalizations.
const (
	NormalizeNone Normalization = "none"
	NormalizeNFC  Normalization = "nfc"
	NormalizeNFD  Normalization = "nfd"
	NormalizeNFKC Normalization = "nfkc"
	NormalizeNFKD Normalization = "nfkd"
)

// ParseNormalization validates a normalization name. The empty string
// selects NFC.
func ParseNormalization(s string) (Normalization, error) {
	n := Normalization(strings.ToLower(strings.TrimSpace(s)))
	switch n {
	case "":
		return NormalizeNFC, nil
	case NormalizeNone, NormalizeNFC, NormalizeNFD, NormalizeNFKC, NormalizeNFKD:
		return n, nil
	}
	return "", fmt.Errorf("unknown normalization %q", s)
}

// Apply converts s to the normal form.
func (n Normalization) Apply(s string) string {
	switch n {
	case NormalizeNFC, "":
		return norm.NFC.String(s)
	case NormalizeNFD:
		return norm.NFD.String(s)
	case NormalizeNFKC:
		return norm.NFKC.String(s)
	case NormalizeNFKD:
		return norm.NFKD.String(s)
	default:
		return s
	}
}

// Config carries the editing settings shared by all commands.
type Config struct {
	Resolver      position.Resolver
	Separators    string
	Normalization Normalization
}

// DefaultConfig returns the settings used when no Config is given.
func DefaultConfig() Config {
	return Config{
		Resolver:      position.NewResolver(position.DefaultMaxDepth),
		Separators:    nav.DefaultSeparators,
		Normalization: NormalizeNFC,
	}
}

func (c Config) converter() nav.Converter {
	return nav.Converter{Resolver: c.Resolver}
}

// Option configures a command at construction.
type Option func(*base)

// WithConfig sets the editing settings.
func WithConfig(cfg Config) Option {
	return func(b *base) {
		b.cfg = cfg
	}
}

// WithSelection records the selection the command was issued from. By
// default the command's own interval is used.
func WithSelection(sel cursor.Selection) Option {
	return func(b *base) {
		b.before = sel
		b.hasBefore = true
	}
}
