package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"lendledger/internal/domain/loan"
)

// Publisher pushes notification messages to a RabbitMQ queue so an external
// mailer can pick them up. Delivery remains fire-and-forget from the
// ledger's point of view.
type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	queue    string
}

// Message is the wire form consumed by the mailer.
type Message struct {
	Kind           Kind      `json:"kind"`
	LoanID         string    `json:"loan_id"`
	BorrowerName   string    `json:"borrower_name"`
	BorrowerEmail  string    `json:"borrower_email"`
	LenderEmail    string    `json:"lender_email"`
	Principal      int64     `json:"principal"`
	MonthlyPayment int64     `json:"monthly_payment,omitempty"`
	Remaining      int64     `json:"remaining_amount"`
	SentAt         time.Time `json:"sent_at"`
}

func NewPublisher(url, exchange, queue string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &Publisher{conn: conn, channel: channel, exchange: exchange, queue: queue}
	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return p, nil
}

func (p *Publisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := p.channel.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := p.channel.QueueBind(p.queue, p.queue, p.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (p *Publisher) LoanCreated(ctx context.Context, l *loan.Loan) error {
	return p.publish(ctx, KindCreation, l)
}

func (p *Publisher) PaymentReminder(ctx context.Context, l *loan.Loan) error {
	return p.publish(ctx, KindReminder, l)
}

func (p *Publisher) publish(ctx context.Context, kind Kind, l *loan.Loan) error {
	body, err := json.Marshal(Message{
		Kind:           kind,
		LoanID:         l.LoanID,
		BorrowerName:   l.BorrowerName,
		BorrowerEmail:  l.BorrowerEmail,
		LenderEmail:    l.LenderEmail,
		Principal:      l.Principal,
		MonthlyPayment: l.MonthlyPayment,
		Remaining:      l.RemainingAmount,
		SentAt:         time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
