package providers

import (
	"qrd/internal/structures"
	"strings"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	v.AddValidator("unixPath", func(val any) bool {
		s, ok := val.(string)
		return ok && strings.HasPrefix(s, "/") && !strings.ContainsRune(s, 0)
	})

	if !v.Validate() {
		return v.Errors
	}
	return nil
}
