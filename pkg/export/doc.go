// Package export turns offers into downloadable files and delivers them.
//
// An Exporter renders HTML through the render package and plain text with
// PlainText, names the files, and hands them to one or more sinks: a
// directory, the system clipboard, or an email proof. Incomplete offers are
// skipped from collection exports and reported in the Result.
//
//	exp := export.New(
//	    export.WithSink(export.NewDirSink("./out")),
//	    export.WithLogger(log),
//	)
//	res, err := exp.ExportAll(ctx, offers, export.DefaultOptions())
//	if errors.Is(err, export.ErrNoValidOffers) {
//	    // nothing passed ValidateForDownload
//	}
package export
