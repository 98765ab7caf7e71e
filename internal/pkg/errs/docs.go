// Package errs provides the typed errors shared by the shipping desk.
//
// Every error type wraps one sentinel so callers can classify with errors.Is
// and inspect details with errors.As:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: unknown order, product, session, rate or template
//   - StateIsInvalidError: workflow operation invoked from a forbidding state
//   - ProviderError: remote quote, purchase or catalog failure with provider text
//   - AuthorizationError: caller lacks permission
//   - VersionIsInvalidError: optimistic concurrency conflict on a session
//   - LabelNotRecordedError: paid label that could not be written onto its order
//
// Messages follow "<sentinel>: <detail> (cause: <cause>)".
package errs
