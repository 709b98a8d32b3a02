package mailerclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/obrativa/obras-manager-api/internal/config"
)

// SendEmailRequest é o corpo aceito pela API transacional de e-mail
type SendEmailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type Client interface {
	SendEmail(req SendEmailRequest) error
}

type MailerClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MailerClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

func (c *MailerClient) SendEmail(emailReq SendEmailRequest) error {
	jsonData, err := json.Marshal(emailReq)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/emails", c.config.Mailer.URL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Mailer.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailer: erro ao enviar e-mail (%d): %s", resp.StatusCode, body)
	}

	return nil
}
