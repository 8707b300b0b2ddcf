// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach the stores.
//
// Each failed rule is a sentinel such as [ErrEmptyTitle]; the service layer
// wraps them into its invalid-data error and the HTTP layer answers 400 with
// the rule text.
package validators

import "context"

// Validator checks a value of any supported model type. When fields are
// given only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
