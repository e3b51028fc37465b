// services/sms.go
package services

import (
	"context"
	"errors"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"wellbeing-backend/config"
	"wellbeing-backend/utils"
)

// SMSSender delivers short text alerts.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// TwilioSMS sends alerts through the Twilio messaging API.
type TwilioSMS struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSMS(cfg *config.Config) *TwilioSMS {
	return &TwilioSMS{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioPhoneNumber,
	}
}

// SendSMS gives up when ctx ends; the Twilio client itself takes no context.
func (s *TwilioSMS) SendSMS(ctx context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(utils.E164(to))
	params.SetFrom(s.from)
	params.SetBody(body)

	done := make(chan error, 1)
	go func() {
		resp, err := s.client.Api.CreateMessage(params)
		if err == nil && resp.Sid == nil {
			err = errors.New("twilio returned no message SID")
		}
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
