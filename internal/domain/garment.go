package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryTop    Category = "top"
	CategoryBottom Category = "bottom"
	CategoryOuter  Category = "outer"
	CategoryShoes  Category = "shoes"
)

// RequiredSlots are the slots every outfit must fill. Outer is optional.
var RequiredSlots = []Category{CategoryTop, CategoryBottom, CategoryShoes}

func ValidCategory(c string) bool {
	switch Category(c) {
	case CategoryTop, CategoryBottom, CategoryOuter, CategoryShoes:
		return true
	}
	return false
}

// Unknown is the sentinel every attribute vocabulary shares. Anything an
// external classifier returns that is not in the vocabulary degrades to it.
const Unknown = "unknown"

type Color string

const (
	ColorBlack   Color = "black"
	ColorWhite   Color = "white"
	ColorGray    Color = "gray"
	ColorNavy    Color = "navy"
	ColorBeige   Color = "beige"
	ColorBrown   Color = "brown"
	ColorRed     Color = "red"
	ColorBlue    Color = "blue"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorPink    Color = "pink"
	ColorPurple  Color = "purple"
	ColorMulti   Color = "multi"
	ColorUnknown Color = Unknown
)

// NeutralColors anchor the color-compatibility score.
var NeutralColors = map[Color]bool{
	ColorBlack: true,
	ColorWhite: true,
	ColorGray:  true,
	ColorNavy:  true,
	ColorBeige: true,
	ColorBrown: true,
}

func ValidColor(c string) bool {
	switch Color(c) {
	case ColorBlack, ColorWhite, ColorGray, ColorNavy, ColorBeige, ColorBrown,
		ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPink, ColorPurple,
		ColorMulti, ColorUnknown:
		return true
	}
	return false
}

// NormalizeColor maps any externally supplied value into the vocabulary.
// Total and idempotent: out-of-vocabulary input becomes ColorUnknown.
func NormalizeColor(raw string) Color {
	if ValidColor(raw) {
		return Color(raw)
	}
	return ColorUnknown
}

type Pattern string

const (
	PatternSolid   Pattern = "solid"
	PatternStripe  Pattern = "stripe"
	PatternCheck   Pattern = "check"
	PatternDot     Pattern = "dot"
	PatternFloral  Pattern = "floral"
	PatternGraphic Pattern = "graphic"
	PatternUnknown Pattern = Unknown
)

func ValidPattern(p string) bool {
	switch Pattern(p) {
	case PatternSolid, PatternStripe, PatternCheck, PatternDot, PatternFloral,
		PatternGraphic, PatternUnknown:
		return true
	}
	return false
}

func NormalizePattern(raw string) Pattern {
	if ValidPattern(raw) {
		return Pattern(raw)
	}
	return PatternUnknown
}

type Warmth string

const (
	WarmthThin    Warmth = "thin"
	WarmthMid     Warmth = "mid"
	WarmthThick   Warmth = "thick"
	WarmthUnknown Warmth = Unknown
)

func ValidWarmth(w string) bool {
	switch Warmth(w) {
	case WarmthThin, WarmthMid, WarmthThick, WarmthUnknown:
		return true
	}
	return false
}

func NormalizeWarmth(raw string) Warmth {
	if ValidWarmth(raw) {
		return Warmth(raw)
	}
	return WarmthUnknown
}

type Vibe string

const (
	VibeCasual  Vibe = "casual"
	VibeFormal  Vibe = "formal"
	VibeSporty  Vibe = "sporty"
	VibeMinimal Vibe = "minimal"
	VibeStreet  Vibe = "street"
	VibeDandy   Vibe = "dandy"
	VibeCute    Vibe = "cute"
	VibeUnknown Vibe = Unknown
)

func ValidVibe(v string) bool {
	switch Vibe(v) {
	case VibeCasual, VibeFormal, VibeSporty, VibeMinimal, VibeStreet,
		VibeDandy, VibeCute, VibeUnknown:
		return true
	}
	return false
}

func NormalizeVibe(raw string) Vibe {
	if ValidVibe(raw) {
		return Vibe(raw)
	}
	return VibeUnknown
}

// Style is a user-chosen tag, independent of the vision-derived attributes.
// Unlike the other vocabularies it has no unknown member; absence is the
// empty string.
type Style string

const (
	StyleCasual  Style = "casual"
	StyleFormal  Style = "formal"
	StyleSporty  Style = "sporty"
	StyleMinimal Style = "minimal"
	StyleStreet  Style = "street"
	StyleDandy   Style = "dandy"
)

func ValidStyle(s string) bool {
	switch Style(s) {
	case StyleCasual, StyleFormal, StyleSporty, StyleMinimal, StyleStreet, StyleDandy:
		return true
	}
	return false
}

type GarmentStatus string

const (
	GarmentActive        GarmentStatus = "active"
	GarmentPendingDelete GarmentStatus = "pending_delete"
)

type Garment struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"user_id"`
	Category       Category      `json:"category"`
	Name           string        `json:"name"`
	Color          Color         `json:"color"`
	Pattern        Pattern       `json:"pattern"`
	Warmth         Warmth        `json:"warmth"`
	Vibe           Vibe          `json:"vibe"`
	PrimaryStyle   Style         `json:"primary_style,omitempty"`
	SecondaryStyle Style         `json:"secondary_style,omitempty"`
	ImageRef       string        `json:"image_ref,omitempty"`
	Description    string        `json:"description,omitempty"`
	Status         GarmentStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Classification is the output contract of the attribute-classification
// collaborator. Raw strings; callers must run them through ApplyClassification
// (or the Normalize* helpers) before anything is stored or scored.
type Classification struct {
	Color       string `json:"color"`
	Pattern     string `json:"pattern"`
	Warmth      string `json:"warmth"`
	Vibe        string `json:"vibe"`
	Description string `json:"description"`
}

// UnknownClassification is the degraded fallback when the collaborator fails.
func UnknownClassification() Classification {
	return Classification{
		Color:   Unknown,
		Pattern: Unknown,
		Warmth:  Unknown,
		Vibe:    Unknown,
	}
}

// ApplyClassification normalizes a raw classification onto the garment.
func (g *Garment) ApplyClassification(c Classification) {
	g.Color = NormalizeColor(c.Color)
	g.Pattern = NormalizePattern(c.Pattern)
	g.Warmth = NormalizeWarmth(c.Warmth)
	g.Vibe = NormalizeVibe(c.Vibe)
	g.Description = c.Description
}

// NormalizeStyles clears the secondary style when it duplicates the primary.
func (g *Garment) NormalizeStyles() {
	if g.SecondaryStyle != "" && g.SecondaryStyle == g.PrimaryStyle {
		g.SecondaryStyle = ""
	}
}
