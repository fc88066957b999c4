package handlers

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"fraudwatch-server/src/fraud"
	"fraudwatch-server/src/logger"
	"fraudwatch-server/src/models"
	"fraudwatch-server/src/report"
)

// enrich fetches the filtered table once and runs the fraud pipeline on it.
func enrich(ctx context.Context, src TransactionSource, rq reportQuery) (*fraud.Result, error) {
	table, err := src.GetTransactions(ctx, rq.Filter)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return fraud.Enrich(table, rq.Options)
}

func GetReport(src TransactionSource, cache LookupCache, defaults ReportDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rq, err := parseReportQuery(r, defaults)
		if err != nil {
			writeError(w, r, err, "invalid report query")
			return
		}

		var (
			res     *fraud.Result
			holders []models.Cardholder
		)
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			res, err = enrich(ctx, src, rq)
			return err
		})
		g.Go(func() error {
			var err error
			holders, err = cardholders(ctx, src, cache)
			return err
		})
		if err := g.Wait(); err != nil {
			writeError(w, r, err, "failed to build report")
			return
		}

		rep, err := report.Build(res)
		if err != nil {
			writeError(w, r, err, "failed to build report")
			return
		}
		rep.Cardholders = holders

		log := logger.FromContext(r.Context())
		log.Info().
			Str("method", rq.Options.Method.String()).
			Int("rows", rep.Summary.TotalTransactions).
			Int("outliers", rep.Summary.OutliersDetected).
			Msg("report built")
		writeJSON(w, http.StatusOK, rep)
	}
}

// rowsHandler serves one filtered slice of the enriched table.
func rowsHandler(src TransactionSource, defaults ReportDefaults, force func(*fraud.Options), pick func(*models.Table) (*models.Table, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rq, err := parseReportQuery(r, defaults)
		if err != nil {
			writeError(w, r, err, "invalid report query")
			return
		}
		if force != nil {
			force(&rq.Options)
		}
		res, err := enrich(r.Context(), src, rq)
		if err != nil {
			writeError(w, r, err, "failed to load transactions")
			return
		}
		out, err := pick(res.Table)
		if err != nil {
			writeError(w, r, err, "failed to load transactions")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func GetOutliers(src TransactionSource, defaults ReportDefaults) http.HandlerFunc {
	return rowsHandler(src, defaults, nil, func(t *models.Table) (*models.Table, error) {
		return report.Outliers(t), nil
	})
}

func GetEarlyHours(src TransactionSource, defaults ReportDefaults) http.HandlerFunc {
	return rowsHandler(src, defaults, nil, fraud.EarlyHourTransactions)
}

func GetMicroTransactions(src TransactionSource, defaults ReportDefaults) http.HandlerFunc {
	force := func(o *fraud.Options) { o.DetectMicro = true }
	return rowsHandler(src, defaults, force, func(t *models.Table) (*models.Table, error) {
		return t.Filter(models.Transaction.IsMicroFraud), nil
	})
}

// ExportSuspiciousCSV downloads the outlier rows with every derived column.
func ExportSuspiciousCSV(src TransactionSource, defaults ReportDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rq, err := parseReportQuery(r, defaults)
		if err != nil {
			writeError(w, r, err, "invalid report query")
			return
		}
		res, err := enrich(r.Context(), src, rq)
		if err != nil {
			writeError(w, r, err, "failed to export transactions")
			return
		}
		suspicious := report.Outliers(res.Table)
		log := logger.FromContext(r.Context())

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="suspicious_transactions.csv"`)
		if err := report.WriteCSV(w, suspicious); err != nil {
			log.Error().Err(err).Msg("failed to write csv export")
			return
		}
		log.Info().Int("rows", suspicious.Len()).Msg("exported suspicious transactions")
	}
}
