package cli

import (
	"fmt"

	apperrors "github.com/julianstephens/liftshift/internal/errors"
	"github.com/julianstephens/liftshift/internal/utils"
	"github.com/julianstephens/liftshift/internal/validation"
)

// Check validates req and runs the conflict checker against its date.
func (c *Context) Check(req validation.ConflictRequest) (validation.ValidationResult, error) {
	if err := c.Validator.ValidateRequest(req); err != nil {
		return validation.ValidationResult{}, err
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return validation.ValidationResult{}, err
	}
	day, err := c.Day(date)
	if err != nil {
		return validation.ValidationResult{}, fmt.Errorf("failed to load %s: %w", req.Date, err)
	}
	return c.Validator.Check(req, day), nil
}

// GuardConflicts prints every conflict and blocks the save on errors unless force is set.
func GuardConflicts(result validation.ValidationResult, force bool) error {
	for _, conflict := range result.Conflicts {
		style := WarningStyle
		if conflict.Severity == validation.SeverityError {
			style = ErrorStyle
		}
		fmt.Println(style.Render(fmt.Sprintf("⚠ [%s] %s", conflict.Severity, conflict.Description)))
	}
	if result.HasErrors() && !force {
		return apperrors.ErrConflict
	}
	return nil
}
