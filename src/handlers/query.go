package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fraudwatch-server/src/fraud"
	"fraudwatch-server/src/models"
)

const dateLayout = "2006-01-02"

// ReportDefaults fill in report parameters the caller leaves out.
type ReportDefaults struct {
	Method         fraud.Method
	MicroThreshold float64
}

type reportQuery struct {
	Filter  models.TransactionFilter
	Options fraud.Options
}

// parseCardholderID accepts "", "all" or a positive id. Nil means every cardholder.
func parseCardholderID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: invalid cardholder id %q", errBadRequest, s)
	}
	return &id, nil
}

func parseDate(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", errBadRequest, name)
	}
	return &d, nil
}

func parseReportQuery(r *http.Request, defaults ReportDefaults) (reportQuery, error) {
	q := r.URL.Query()
	var (
		rq  reportQuery
		err error
	)

	if rq.Filter.CardholderID, err = parseCardholderID(q.Get("cardholder_id")); err != nil {
		return rq, err
	}
	if rq.Filter.Start, err = parseDate("start", q.Get("start")); err != nil {
		return rq, err
	}
	if rq.Filter.End, err = parseDate("end", q.Get("end")); err != nil {
		return rq, err
	}
	if rq.Filter.Start != nil && rq.Filter.End != nil && rq.Filter.End.Before(*rq.Filter.Start) {
		return rq, fmt.Errorf("%w: end is before start", errBadRequest)
	}

	rq.Options = fraud.Options{Method: defaults.Method, MicroThreshold: defaults.MicroThreshold}
	if m := q.Get("method"); m != "" {
		if rq.Options.Method, err = fraud.ParseMethod(m); err != nil {
			return rq, err
		}
	}
	micro := q.Get("micro")
	if micro != "" {
		if rq.Options.DetectMicro, err = strconv.ParseBool(micro); err != nil {
			return rq, fmt.Errorf("%w: micro must be a boolean", errBadRequest)
		}
	}
	if s := q.Get("threshold"); s != "" {
		if rq.Options.MicroThreshold, err = strconv.ParseFloat(s, 64); err != nil {
			return rq, fmt.Errorf("%w: threshold must be a number", errBadRequest)
		}
		// A threshold alone asks for micro detection; an explicit micro wins.
		if micro == "" {
			rq.Options.DetectMicro = true
		}
	}
	return rq, nil
}
