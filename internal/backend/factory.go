// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"fmt"

	"careerprep/cli/internal/config"
)

// New creates a backend API implementation selected by configuration.
// The session store never branches on the backend kind; the choice is
// made once here at the boundary.
func New(cfg config.Config) (API, error) {
	switch cfg.Backend.Mode {
	case config.BackendModeMemory, "":
		return NewMemory(DefaultLatency), nil
	case config.BackendModeHTTP:
		if cfg.Backend.BaseURL == "" {
			return nil, fmt.Errorf("backend mode %q requires a base URL", cfg.Backend.Mode)
		}
		return newHTTP(cfg.Backend.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown backend mode %q", cfg.Backend.Mode)
	}
}
