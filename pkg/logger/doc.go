// Package logger builds *slog.Logger values for offerkit tools.
//
// New accepts functional options for format (text or json), level, output,
// static attributes and ContextExtractor callbacks. Extractors run on every
// record, so values stored in a context show up without threading them
// through calls. The run id set by WithRunID is always extracted.
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "offergen"))
//	ctx = logger.WithRunID(ctx, uuid.NewString())
//	log.InfoContext(ctx, "offer exported", logger.OfferID(o.ID), logger.File(name))
//
// Attribute helpers in attr.go keep key names consistent between packages.
// The generation engine never logs; only collaborators (export, CLI) do.
package logger
