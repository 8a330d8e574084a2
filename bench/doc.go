// Package bench drives the naive vs. blocked multiplication benchmark.
//
// A run generates two n×n matrices with i.i.d. uniform entries in [0,1),
// times matmul.Naive and then matmul.Block on the same inputs, and reports
// both elapsed times together with the top-left corner of each product:
//
//	report, err := bench.Run(bench.WithSize(128), bench.WithBlockSize(64))
//	if err != nil {
//		return err
//	}
//	_, err = report.WriteTo(os.Stdout)
//
// All run parameters live in Config, resolved from functional options over
// the Default* constants; nothing is kept in package-level state between runs.
// The driver does not compare the two products unless WithVerify is given.
//
// Diagnostics go to the zerolog.Logger from WithLogger (silent by default);
// results go to the report writer.
package bench
