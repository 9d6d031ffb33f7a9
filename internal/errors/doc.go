// Package errors provides structured errors for the toon-tailor service.
//
// Every error carries a Code (NOT_FOUND, INVALID_ARGUMENT, ...), a user-facing
// Message, an optional Reason naming the domain condition, an optional Cause and
// free-form metadata.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character with ID %s not found", id)
//	err := errors.InvalidArgument("Invalid character file format").
//	    WithReason(transfer.ReasonParse)
//
// Wrapping keeps the code and reason of the wrapped error:
//
//	if err := repo.SaveOne(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save character")
//	}
//
// # Error Checking
//
// errors.Is matches on code, and on reason when the target has one, so a
// sentinel built with WithReason only matches that condition:
//
//	var errLimit = errors.FailedPrecondition("").WithReason(engine.ReasonAbilityLimit)
//	if errors.Is(err, errLimit) { ... }
//
// or more directly:
//
//	if errors.HasReason(err, engine.ReasonAbilityLimit) { ... }
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder().WithReason(transfer.ReasonShape)
//	errors.ValidateRange("appearance.height", c.Appearance.Height, 120, 220, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err). Reason and metadata travel in a
// google.rpc.ErrorInfo detail and come back through FromGRPCError on the client.
package errors
