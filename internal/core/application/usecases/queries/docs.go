// Package queries contains the read side of the shipping desk: session read
// models, the flat-rate catalog and stored packaging rules. Handlers return
// plain read models and never change state.
package queries
