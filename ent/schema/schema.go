// Package schema defines the ent schemas backing the planning core.
// Aggregate value-object collections (alarms, time blocks, plans, actions)
// live in typed JSON columns; see pkg/domain for the value objects.
package schema

import "time"

func nowUTC() time.Time { return time.Now().UTC() }
