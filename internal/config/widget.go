package config

import (
	"fmt"

	"combobox/internal/domain"
	"combobox/internal/styling"
)

// Widget is a config decoded into the types the select widget consumes
type Widget struct {
	Options []domain.Option
	Styles  styling.StyleGroup
	Classes styling.ClassGroup
	Sheet   styling.Sheet

	// Value is the controlled value, nil when the config sets none
	Value *domain.Option
	// Initial is the option selected in the previous session, if still valid
	Initial *domain.Option
}

// Widget decodes options, overrides and the stylesheet
func (c *Config) Widget() (*Widget, error) {
	w := &Widget{Options: make([]domain.Option, 0, len(c.Options))}
	for _, oc := range c.Options {
		w.Options = append(w.Options, oc.Option())
	}

	var err error
	if w.Styles, err = styling.DecodeStyleGroup(c.Styles); err != nil {
		return nil, err
	}
	if w.Classes, err = styling.DecodeClassGroup(c.Classes); err != nil {
		return nil, err
	}
	if w.Sheet, err = styling.DecodeSheet(c.Sheet); err != nil {
		return nil, err
	}

	if c.Value != nil {
		opt, ok := optionAt(w.Options, *c.Value)
		if !ok {
			return nil, fmt.Errorf("value: index %d out of range [0, %d)", *c.Value, len(w.Options))
		}
		w.Value = opt
	}
	if c.LastSelected != nil {
		// a stale index after the options were edited is not an error
		w.Initial, _ = optionAt(w.Options, *c.LastSelected)
	}
	return w, nil
}

// Option converts the entry to a domain option
func (oc OptionConfig) Option() domain.Option {
	opt := domain.Option{Label: oc.Label, Value: oc.Value}
	if oc.Keyword != nil {
		opt.Keyword = domain.Literal(*oc.Keyword)
	}
	return opt
}

// RecordSelection stores index as the last selected option
func (c *Config) RecordSelection(index int) {
	if index < 0 || index >= len(c.Options) {
		return
	}
	c.LastSelected = &index
}

func optionAt(options []domain.Option, i int) (*domain.Option, bool) {
	if i < 0 || i >= len(options) {
		return nil, false
	}
	opt := options[i]
	return &opt, true
}
