// Package observability provides metrics and tracing helpers.
package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics publishes application metrics to CloudWatch. A nil client turns
// every call into a no-op, which is what local development and tests use.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
}

// NewMetrics creates a metrics instance
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// IncrementCounter records a count-of-one for the named metric.
func (m *Metrics) IncrementCounter(ctx context.Context, name string, dimensions ...string) {
	m.put(ctx, name, 1, types.StandardUnitCount, dimensions)
}

// RecordDuration records an operation duration in milliseconds.
func (m *Metrics) RecordDuration(ctx context.Context, name string, d time.Duration, dimensions ...string) {
	m.put(ctx, name, float64(d.Milliseconds()), types.StandardUnitMilliseconds, dimensions)
}

// RecordGauge records an instantaneous value, such as the menu count of a
// saved flow.
func (m *Metrics) RecordGauge(ctx context.Context, name string, value float64, dimensions ...string) {
	m.put(ctx, name, value, types.StandardUnitNone, dimensions)
}

// put ships a single datum. Delivery failures are ignored: metrics must
// never fail the operation being measured.
func (m *Metrics) put(ctx context.Context, name string, value float64, unit types.StandardUnit, dimensions []string) {
	if m == nil || m.client == nil {
		return
	}

	datum := types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  aws.Time(time.Now().UTC()),
	}
	for i := 0; i+1 < len(dimensions); i += 2 {
		datum.Dimensions = append(datum.Dimensions, types.Dimension{
			Name:  aws.String(dimensions[i]),
			Value: aws.String(dimensions[i+1]),
		})
	}

	_, _ = m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: []types.MetricDatum{datum},
	})
}
