package config

import (
	"fmt"
	"regexp"

	"github.com/bittoy/ytparse/sanitize"
)

func compileRule(spec RuleSpec) (sanitize.Rule, error) {
	re, err := regexp.Compile(spec.From)
	if err != nil {
		return sanitize.Rule{}, fmt.Errorf("config: sanitizer rule %q: %w", spec.Name, err)
	}
	return sanitize.Rule{Name: spec.Name, From: re, To: spec.To}, nil
}
