package tui

import (
	"fmt"
	"math"
	"strings"
)

// Slider is an adjustable numeric parameter with a visual bar.
type Slider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Format    string // value format, e.g. "%.0f"
	Unit      string
	Width     int
	IsFocused bool
}

// NewSlider creates a slider with the default width and whole-number format.
func NewSlider(label string, value, min, max, step float64) *Slider {
	return &Slider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  30,
	}
}

// Increment raises the value by one step, clamped to Max.
func (s *Slider) Increment() {
	if v := s.Value + s.Step; v <= s.Max {
		s.Value = v
	} else {
		s.Value = s.Max
	}
}

// Decrement lowers the value by one step, clamped to Min.
func (s *Slider) Decrement() {
	if v := s.Value - s.Step; v >= s.Min {
		s.Value = v
	} else {
		s.Value = s.Min
	}
}

// SetRange updates the bounds and clamps the current value into them.
func (s *Slider) SetRange(min, max float64) {
	s.Min = min
	s.Max = max
	s.Value = math.Max(min, math.Min(max, s.Value))
}

func (s *Slider) percentage() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Render returns the slider as label, value and bar.
func (s *Slider) Render() string {
	var b strings.Builder

	label := labelStyle
	value := valueStyle
	if s.IsFocused {
		label = label.Foreground(colorPrimary)
		value = value.Foreground(colorAccent)
	}

	b.WriteString(label.Render(s.Label))
	b.WriteString("  ")
	b.WriteString(value.Render(fmt.Sprintf(s.Format, s.Value) + s.Unit))
	b.WriteString("\n")
	b.WriteString(s.renderBar())
	return b.String()
}

func (s *Slider) renderBar() string {
	filled := int(math.Round(float64(s.Width) * s.percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > s.Width {
		filled = s.Width
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(sliderThumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(sliderThumbStyle.Render("●"))
	if empty := s.Width - filled; empty > 1 {
		bar.WriteString(sliderTrackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")
	return bar.String()
}
