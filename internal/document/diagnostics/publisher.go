// Package diagnostics reports fields that fell back to empty values so
// template and data owners can fix the source records.
package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/google/uuid"

	awsclient "document-workers/internal/common/aws"
	"document-workers/internal/common/logger"
	"document-workers/internal/document/tabs"
)

// Report describes one resolution that produced fallbacks.
type Report struct {
	ReportID           string          `json:"reportId"`
	Environment        string          `json:"environment"`
	TemplateID         string          `json:"templateId"`
	Template           string          `json:"template"`
	Mode               string          `json:"mode"`
	ContractID         string          `json:"contractId"`
	JobKey             int64           `json:"jobKey"`
	ProcessInstanceKey int64           `json:"processInstanceKey"`
	Fallbacks          []tabs.Fallback `json:"fallbacks"`
	OccurredAt         string          `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, report Report) (string, error)
}

// SNSPublisher sends reports as JSON messages to an SNS topic.
type SNSPublisher struct {
	client   awsclient.SNSPublisher
	topicARN string
	logger   logger.Logger
	now      func() time.Time
}

func NewSNSPublisher(client awsclient.SNSPublisher, topicARN string, log logger.Logger) *SNSPublisher {
	return &SNSPublisher{
		client:   client,
		topicARN: topicARN,
		logger:   log.WithFields(map[string]interface{}{"component": "diagnostics"}),
		now:      time.Now,
	}
}

// Publish assigns the report an id and timestamp when missing and returns
// the report id. Reports without fallbacks are not sent.
func (p *SNSPublisher) Publish(ctx context.Context, report Report) (string, error) {
	if len(report.Fallbacks) == 0 {
		return "", nil
	}
	if report.ReportID == "" {
		report.ReportID = uuid.New().String()
	}
	if report.OccurredAt == "" {
		report.OccurredAt = p.now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(fmt.Sprintf("Document field fallbacks: %s", report.Template)),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"environment": awsclient.StringAttribute(report.Environment),
			"templateId":  awsclient.StringAttribute(report.TemplateID),
		},
	})
	if err != nil {
		return "", fmt.Errorf("publish report %s: %w", report.ReportID, err)
	}

	p.logger.Debug("fallback report published", map[string]interface{}{
		"reportId":  report.ReportID,
		"messageId": aws.ToString(out.MessageId),
		"fields":    len(report.Fallbacks),
	})
	return report.ReportID, nil
}
