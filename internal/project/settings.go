// Package project holds the packaging options edited across the settings
// pages and inspects the chosen script on disk.
package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

// Optimization selects the build trade-off.
type Optimization string

const (
	OptimizeFast     Optimization = "fast"
	OptimizeBalanced Optimization = "balanced"
	OptimizeSize     Optimization = "size"
)

// Optimizations lists the levels in display order.
var Optimizations = []Optimization{OptimizeFast, OptimizeBalanced, OptimizeSize}

// Plugins offered on the packaging page.
var Plugins = []string{"numpy", "scipy", "matplotlib", "tkinter", "qt-plugins"}

// Exclusion names a common exclusion group.
type Exclusion string

const (
	ExcludePycache  Exclusion = "pycache"
	ExcludeTests    Exclusion = "tests"
	ExcludeDocs     Exclusion = "docs"
	ExcludeDevTools Exclusion = "dev_tools"
)

// Exclusions lists the common exclusion groups in display order.
var Exclusions = []Exclusion{ExcludePycache, ExcludeTests, ExcludeDocs, ExcludeDevTools}

// Settings is the in-memory packaging configuration. It is never persisted.
type Settings struct {
	Script    string `validate:"required,script_file"`
	OutputDir string
	Icon      string `validate:"omitempty,icon_file"`
	MultiFile bool

	IncludeFiles    []string             `validate:"dive,required"`
	ExcludePatterns []string             `validate:"dive,required"`
	Exclusions      map[Exclusion]bool

	SingleFile   bool
	Console      bool
	Optimization Optimization `validate:"oneof=fast balanced size"`
	Threading    bool
	Plugins      []string `validate:"dive,oneof=numpy scipy matplotlib tkinter qt-plugins"`
	OutputName   string   `validate:"required,output_name"`

	BuildThreads  int     `validate:"min=1,max=16"`
	MemoryLimitGB float64 `validate:"gte=0.5,lte=8"`

	DebugMode      bool
	Verbose        bool
	GenerateReport bool
	ShowProgress   bool
}

// DefaultSettings returns the values the pages start from.
func DefaultSettings() *Settings {
	return &Settings{
		Exclusions: map[Exclusion]bool{
			ExcludePycache:  true,
			ExcludeTests:    true,
			ExcludeDocs:     true,
			ExcludeDevTools: true,
		},
		SingleFile:    true,
		Optimization:  OptimizeBalanced,
		Threading:     true,
		OutputName:    "MyApplication",
		BuildThreads:  4,
		MemoryLimitGB: 2.0,
		ShowProgress:  true,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	outputNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	scriptExtensions  = map[string]struct{}{".py": {}, ".pyw": {}}
	iconExtensions    = map[string]struct{}{".ico": {}, ".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("script_file", func(fl validator.FieldLevel) bool {
			_, ok := scriptExtensions[strings.ToLower(filepath.Ext(fl.Field().String()))]
			return ok
		})

		_ = v.RegisterValidation("icon_file", func(fl validator.FieldLevel) bool {
			_, ok := iconExtensions[strings.ToLower(filepath.Ext(fl.Field().String()))]
			return ok
		})

		_ = v.RegisterValidation("output_name", func(fl validator.FieldLevel) bool {
			return outputNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks s and returns the first problem as a ValidationError.
func (s *Settings) Validate() error {
	if s == nil {
		return packdeckerrors.NewValidationError("settings", "settings are nil", nil)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.ToLower(ve.Field())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return packdeckerrors.NewValidationError(field, msg, err)
	}
	return packdeckerrors.NewValidationError("settings", err.Error(), err)
}

// ResolvedOutputDir is OutputDir, or the script's directory joined with
// "dist" when OutputDir is empty.
func (s *Settings) ResolvedOutputDir() string {
	if s.OutputDir != "" {
		return s.OutputDir
	}
	if s.Script == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(s.Script), "dist")
}

// TogglePlugin adds or removes name from Plugins.
func (s *Settings) TogglePlugin(name string) {
	for i, p := range s.Plugins {
		if p == name {
			s.Plugins = append(s.Plugins[:i:i], s.Plugins[i+1:]...)
			return
		}
	}
	s.Plugins = append(s.Plugins, name)
}

// HasPlugin reports whether name is enabled.
func (s *Settings) HasPlugin(name string) bool {
	for _, p := range s.Plugins {
		if p == name {
			return true
		}
	}
	return false
}
