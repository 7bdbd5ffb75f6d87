package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tswizard/errs"
	"github.com/sartorproj/tswizard/timeseries"
)

// minObservations is the fewest usable observations either test accepts.
const minObservations = 10

// CriticalValues holds test critical values at the standard levels.
type CriticalValues struct {
	Pct1  float64
	Pct5  float64
	Pct10 float64
}

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	CriticalVals CriticalValues
	IsStationary bool
}

// ADF performs the Augmented Dickey-Fuller test for a unit root using a
// constant-only regression. The null hypothesis is that the series has
// a unit root (is non-stationary). The series is judged stationary when
// the p-value is below 0.05 and the statistic falls below the 5%
// critical value.
//
// maxLag selects the number of lagged difference terms; zero or
// negative picks the default floor((n-1)^(1/3)).
func ADF(series *timeseries.Series, maxLag int) (*ADFResult, error) {
	n := series.Len()
	if n < minObservations {
		return nil, fmt.Errorf("stats: ADF needs at least %d observations, got %d: %w",
			minObservations, n, errs.ErrShortSeries)
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}

	diff := series.Diff()

	// Regression: delta_y_t = alpha + beta*y_{t-1} + sum(gamma_i * delta_y_{t-i}).
	// A unit root means beta = 0; stationarity means beta < 0.
	nObs := n - maxLag - 1
	if nObs < minObservations {
		return nil, fmt.Errorf("stats: ADF has %d usable observations after %d lags: %w",
			nObs, maxLag, errs.ErrShortSeries)
	}

	k := 2 + maxLag
	xData := make([]float64, nObs*k)
	yData := make([]float64, nObs)
	for i := 0; i < nObs; i++ {
		t := i + maxLag
		yData[i] = diff.Values[t]

		row := xData[i*k : (i+1)*k]
		row[0] = 1
		row[1] = series.Values[t]
		for j := 1; j <= maxLag; j++ {
			row[1+j] = diff.Values[t-j]
		}
	}

	coef, se, err := olsFit(mat.NewDense(nObs, k, xData), yData)
	if err != nil {
		return nil, err
	}

	tStat := coef[1] / se[1]
	criticalVals := CriticalValues{Pct1: -3.43, Pct5: -2.86, Pct10: -2.57}
	pValue := adfPValue(tStat)

	return &ADFResult{
		Statistic:    tStat,
		PValue:       pValue,
		Lags:         maxLag,
		NObs:         nObs,
		CriticalVals: criticalVals,
		IsStationary: pValue < 0.05 && tStat < criticalVals.Pct5,
	}, nil
}

// KPSSResult represents the result of a KPSS test.
type KPSSResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	CriticalVals CriticalValues
	IsStationary bool
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test for
// stationarity. The null hypothesis is that the series is stationary,
// so a p-value below 0.05 rejects stationarity. regression selects the
// null: "c" (level stationarity, default for "") or "ct" (trend
// stationarity). nlags sets the Newey-West bandwidth; zero or negative
// picks the default ceil(12*(n/100)^(1/4)).
func KPSS(series *timeseries.Series, regression string, nlags int) (*KPSSResult, error) {
	n := series.Len()
	if n < minObservations {
		return nil, fmt.Errorf("stats: KPSS needs at least %d observations, got %d: %w",
			minObservations, n, errs.ErrShortSeries)
	}
	if regression == "" {
		regression = "c"
	}
	if regression != "c" && regression != "ct" {
		return nil, fmt.Errorf("stats: KPSS regression must be \"c\" or \"ct\", got %q: %w",
			regression, errs.ErrInvalidParameter)
	}

	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}

	residuals := make([]float64, n)
	if regression == "ct" {
		ts := make([]float64, n)
		floats.Span(ts, 0, float64(n-1))
		alpha, beta := stat.LinearRegression(ts, series.Values, nil, false)
		for i, v := range series.Values {
			residuals[i] = v - alpha - beta*float64(i)
		}
	} else {
		mean := stat.Mean(series.Values, nil)
		for i, v := range series.Values {
			residuals[i] = v - mean
		}
	}

	partialSums := make([]float64, n)
	floats.CumSum(partialSums, residuals)

	// Newey-West long-run variance with Bartlett weights.
	s2 := floats.Dot(residuals, residuals) / float64(n)
	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		weight := 1.0 - float64(l)/float64(nlags+1)
		s2 += 2 * weight * cov
	}
	if s2 <= 0 {
		s2 = 1e-10
	}

	etaSq := floats.Dot(partialSums, partialSums)
	kpssStat := etaSq / (float64(n) * float64(n) * s2)

	var criticalVals CriticalValues
	if regression == "ct" {
		criticalVals = CriticalValues{Pct1: 0.216, Pct5: 0.146, Pct10: 0.119}
	} else {
		criticalVals = CriticalValues{Pct1: 0.739, Pct5: 0.463, Pct10: 0.347}
	}

	pValue := kpssPValue(kpssStat, regression)

	return &KPSSResult{
		Statistic:    kpssStat,
		PValue:       pValue,
		Lags:         nlags,
		CriticalVals: criticalVals,
		IsStationary: pValue >= 0.05,
	}, nil
}

// olsFit runs ordinary least squares and returns the coefficients and
// their standard errors.
func olsFit(x *mat.Dense, y []float64) (coef, se []float64, err error) {
	n, k := x.Dims()
	if n <= k {
		return nil, nil, fmt.Errorf("stats: OLS with %d observations for %d regressors: %w",
			n, k, errs.ErrShortSeries)
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, nil, fmt.Errorf("stats: singular regressor matrix: %w", err)
	}

	yVec := mat.NewVecDense(n, y)
	var xty mat.VecDense
	xty.MulVec(x.T(), yVec)

	var beta mat.VecDense
	beta.MulVec(&xtxInv, &xty)

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	sse := 0.0
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		sse += r * r
	}
	s2 := sse / float64(n-k)

	coef = make([]float64, k)
	se = make([]float64, k)
	for i := 0; i < k; i++ {
		coef[i] = beta.AtVec(i)
		se[i] = math.Sqrt(s2 * xtxInv.At(i, i))
	}
	return coef, se, nil
}

// adfPValue approximates the ADF p-value via interpolation of the
// MacKinnon (1994) asymptotic values for a constant-only regression.
func adfPValue(stat float64) float64 {
	switch {
	case stat < -3.96:
		return 0.001
	case stat < -3.43:
		return 0.01
	case stat < -2.86:
		return 0.05
	case stat < -2.57:
		return 0.10
	case stat < -1.94:
		return 0.25
	case stat < -1.62:
		return 0.50
	default:
		return math.Min(0.5+(stat+1.62)*0.25, 0.99)
	}
}

// kpssPValue approximates the KPSS p-value by interpolating the
// critical value tables for the requested null.
func kpssPValue(stat float64, regression string) float64 {
	if regression == "ct" {
		switch {
		case stat > 0.216:
			return 0.01
		case stat > 0.146:
			return 0.05
		case stat > 0.119:
			return 0.10
		default:
			return 0.10 + (0.119-stat)*2
		}
	}

	switch {
	case stat > 0.739:
		return 0.01
	case stat > 0.463:
		return 0.05
	case stat > 0.347:
		return 0.10
	default:
		return 0.10 + (0.347-stat)*0.5
	}
}
