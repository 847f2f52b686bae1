package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/doeshing/claudectl/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return describe(err)
	}
	if _, ok := cfg.PrimaryService(); !ok {
		return errors.New("services: at least one service must be required (optional: false)")
	}
	if err := validateUnique(cfg); err != nil {
		return err
	}
	if _, ok := cfg.Collection(cfg.VectorDB.MemoryCollection); !ok {
		return fmt.Errorf("vector_db.memory_collection %s not found in collections list", cfg.VectorDB.MemoryCollection)
	}
	if cfg.Backups.ErrorAgeDays > 0 && cfg.Backups.ErrorAgeDays < cfg.Backups.MaxAgeDays {
		return fmt.Errorf("backups.error_age_days (%d) must be >= backups.max_age_days (%d)",
			cfg.Backups.ErrorAgeDays, cfg.Backups.MaxAgeDays)
	}
	return nil
}

func validateUnique(cfg domain.Config) error {
	services := map[string]bool{}
	for _, svc := range cfg.Services {
		if services[svc.Name] {
			return fmt.Errorf("services: duplicate service %s", svc.Name)
		}
		services[svc.Name] = true
	}
	collections := map[string]bool{}
	for _, coll := range cfg.Collections {
		if collections[coll.Name] {
			return fmt.Errorf("collections: duplicate collection %s", coll.Name)
		}
		collections[coll.Name] = true
	}
	return nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
