/*
Package tracing provides lightweight request tracing for the HTTP host.

# Overview

Each request gets a span. A trace id arriving in X-Trace-ID is reused so a
caller can stitch its own spans to ours; otherwise a new one is minted. Spans
are buffered and written to the structured log by a single collector
goroutine.

# Usage

	tracer := tracing.New("new-arch-spike", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	// Manual span creation
	span, ctx := tracer.StartSpan(ctx, "operation")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Trace Format

  - X-Trace-ID: identifier for the entire request flow
  - X-Span-ID: identifier for the current operation
*/
package tracing
