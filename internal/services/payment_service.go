package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	payos "github.com/payOSHQ/payos-lib-golang"
	"gorm.io/gorm"
	"itinero/internal/config"
	dbm "itinero/internal/models/db_models"
	"itinero/internal/models/response_models"
	"itinero/internal/repositories"
)

// PaymentService is the billing boundary: it receives provider webhooks that
// move the subscription row, and exposes the plan flag the rest of the app
// reads. The scheduler never enforces the flag itself.
type PaymentService interface {
	HandleWebhook(c *gin.Context)
	GetPlanFlag(ctx context.Context, accountID uuid.UUID) (*response_models.PlanFlagResponse, error)
}

type paymentService struct {
	db      *gorm.DB
	subRepo repositories.SubscriptionRepository
	cfg     config.PaymentConfig
}

func NewPaymentService(db *gorm.DB, subRepo repositories.SubscriptionRepository, cfg config.PaymentConfig) PaymentService {
	return &paymentService{db: db, subRepo: subRepo, cfg: cfg}
}

func (p *paymentService) GetPlanFlag(ctx context.Context, accountID uuid.UUID) (*response_models.PlanFlagResponse, error) {
	sub, err := p.subRepo.GetActiveForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return &response_models.PlanFlagResponse{Plan: "free", Status: "none"}, nil
	}
	return &response_models.PlanFlagResponse{
		Plan:   sub.Plan.Code,
		Status: string(sub.Status),
	}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	if err := payos.Key(p.cfg.ClientID, p.cfg.APIKey, p.cfg.ChecksumKey); err != nil {
		log.Printf("Error setting payos key: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment provider not configured"})
		return
	}

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		log.Printf("Error parsing webhook data: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, payosErr := payos.VerifyPaymentWebhookData(body)
	if payosErr != nil {
		log.Printf("Error verifying webhook data: %v", payosErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	providerTxn := fmt.Sprintf("%s:%d", p.cfg.Provider, data.OrderCode)

	var txn dbm.Transaction
	if err := p.db.
		Where("provider_txn_id = ?", providerTxn).
		First(&txn).Error; err != nil {
		// Ack unknown orders with 200 to avoid a provider retry storm.
		log.Printf("webhook: transaction not found for order %d", data.OrderCode)
		c.JSON(http.StatusOK, gin.H{"message": "Webhook acknowledged"})
		return
	}

	// Idempotency: a replayed webhook for a paid transaction is a no-op.
	if txn.Status != dbm.TxnStatusPaid {
		now := time.Now().Unix()
		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&txn).Updates(map[string]interface{}{
				"status":  dbm.TxnStatusPaid,
				"paid_at": now,
				"receipt": rawBody,
			}).Error; err != nil {
				return err
			}
			return p.activateSubscription(tx, &txn)
		})
		if err != nil {
			log.Printf("webhook: failed to update txn/subscription for order %d: %v", data.OrderCode, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Webhook processed"})
}

func (p *paymentService) activateSubscription(tx *gorm.DB, txn *dbm.Transaction) error {
	type meta struct {
		PlanID uuid.UUID `json:"plan_id"`
	}
	var m meta
	if err := json.Unmarshal(txn.Metadata, &m); err != nil || m.PlanID == uuid.Nil {
		return fmt.Errorf("missing plan info in transaction metadata")
	}

	var plan dbm.Plan
	if err := tx.Where("id = ? AND is_active = TRUE", m.PlanID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found while activating: %w", err)
	}

	now := time.Now()
	starts := now

	// Extend from the current period end when one is still running.
	var current dbm.Subscription
	err := tx.
		Where("account_id = ? AND status IN ? AND ends_at >= ?",
			txn.AccountID,
			[]dbm.SubscriptionStatus{dbm.SubStatusActive, dbm.SubStatusTrialing},
			now.Unix()).
		Order("ends_at DESC").
		First(&current).Error
	if err == nil && current.AutoRenew && current.EndsAt > now.Unix() {
		starts = time.Unix(current.EndsAt, 0)
	}

	ends := starts.AddDate(0, 1, 0)

	sub := dbm.Subscription{
		AccountID:     txn.AccountID,
		PlanID:        plan.ID,
		Status:        dbm.SubStatusActive,
		StartsAt:      starts.Unix(),
		EndsAt:        ends.Unix(),
		AutoRenew:     true,
		Provider:      txn.Provider,
		ProviderSubID: txn.ProviderTxnID,
	}
	if err := tx.Create(&sub).Error; err != nil {
		return err
	}

	return tx.Model(txn).Update("subscription_id", sub.ID).Error
}
