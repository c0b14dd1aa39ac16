package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/jobform/internal/core/styles"
)

// minWordWrap keeps the summary readable on narrow terminals.
const minWordWrap = 20

// Validate checks that the configuration is valid. Problems are reported as
// criterio.FieldErrors keyed by YAML path.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		c.validateSummary(),
		c.validatePrefill(),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func (c *Config) validateSummary() error {
	if c.Summary.WordWrap < minWordWrap {
		return criterio.NewFieldErrors("summary.word_wrap", fmt.Errorf("must be at least %d", minWordWrap))
	}
	return nil
}

// validatePrefill re-keys draft hygiene errors under the prefill section.
func (c *Config) validatePrefill() error {
	err := c.Prefill.Check()
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return criterio.NewFieldErrors("prefill", err)
	}

	var errs criterio.FieldErrorsBuilder
	for _, fe := range fieldErrs {
		errs = errs.Append("prefill."+fe.Field, fe.Err)
	}
	return errs.ToError()
}
