package controllers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tannu371/getting-to-know-kanji/controllers"
	"github.com/tannu371/getting-to-know-kanji/database"
	"github.com/tannu371/getting-to-know-kanji/models"
	"github.com/tannu371/getting-to-know-kanji/repository"
	"github.com/tannu371/getting-to-know-kanji/services"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload produces a Stripe-Signature header value for payload, the same
// scheme ConstructEvent verifies: v1 = HMAC-SHA256(secret, "<ts>.<payload>").
func signPayload(secret string, payload []byte) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func completedPayload(object string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","api_version":%q,"type":"checkout.session.completed","data":{"object":%s}}`,
		stripe.APIVersion, object,
	))
}

func setupWebhookRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(t.TempDir(), zap.NewNop())
	assert.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	repo := repository.NewGormOrderRepo(db)
	recorder := services.NewOrderRecorder(repo, zap.NewNop())
	stripeSvc := services.NewStripeService("sk_test_dummy", testWebhookSecret, "http://localhost:3000")
	wc := controllers.NewWebhookController(stripeSvc, recorder, zap.NewNop())

	r := gin.New()
	r.POST("/webhook", wc.StripeWebhook)
	return r, db
}

func postWebhook(r *gin.Engine, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	assert.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	return count
}

func TestWebhook_RecordsCompletedCheckout(t *testing.T) {
	r, db := setupWebhookRouter(t)
	payload := completedPayload(`{"id":"sess_1","amount_total":690,"currency":"usd","customer_details":{"email":"a@b.com"}}`)

	w := postWebhook(r, payload, signPayload(testWebhookSecret, payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())

	var orders []models.Order
	assert.NoError(t, db.Find(&orders).Error)
	assert.Len(t, orders, 1)
	assert.Equal(t, "sess_1", orders[0].SessionID)
	assert.Equal(t, "a@b.com", *orders[0].CustomerEmail)
	assert.Equal(t, int64(690), *orders[0].Amount)
	assert.Equal(t, "usd", *orders[0].Currency)
}

func TestWebhook_InvalidSignatureRejectedWithoutSideEffects(t *testing.T) {
	r, db := setupWebhookRouter(t)
	payload := completedPayload(`{"id":"sess_1","amount_total":690,"currency":"usd"}`)

	w := postWebhook(r, payload, signPayload("whsec_wrong_secret", payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), orderCount(t, db))
}

func TestWebhook_MissingSignatureRejected(t *testing.T) {
	r, db := setupWebhookRouter(t)
	payload := completedPayload(`{"id":"sess_1"}`)

	w := postWebhook(r, payload, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), orderCount(t, db))
}

// Tampering after signing must invalidate the delivery: verification runs
// over the exact raw bytes received.
func TestWebhook_TamperedBodyRejected(t *testing.T) {
	r, db := setupWebhookRouter(t)
	payload := completedPayload(`{"id":"sess_1","amount_total":690}`)
	signature := signPayload(testWebhookSecret, payload)
	tampered := bytes.Replace(payload, []byte("690"), []byte("1690"), 1)

	w := postWebhook(r, tampered, signature)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), orderCount(t, db))
}

func TestWebhook_OtherEventTypesAckedWithoutRecording(t *testing.T) {
	r, db := setupWebhookRouter(t)
	payload := []byte(fmt.Sprintf(
		`{"id":"evt_2","api_version":%q,"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`,
		stripe.APIVersion,
	))

	w := postWebhook(r, payload, signPayload(testWebhookSecret, payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())
	assert.Equal(t, int64(0), orderCount(t, db))
}

// Redelivering the identical event records it twice. No deduplication is
// performed; documented current behavior, not a bug fix target.
func TestWebhook_DuplicateDeliveryRecordsTwice(t *testing.T) {
	r, db := setupWebhookRouter(t)
	payload := completedPayload(`{"id":"sess_dup","amount_total":690,"currency":"usd"}`)

	first := postWebhook(r, payload, signPayload(testWebhookSecret, payload))
	second := postWebhook(r, payload, signPayload(testWebhookSecret, payload))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, int64(2), orderCount(t, db))
}

// A ledger write failure still acknowledges the delivery: Stripe retries on
// delivery failure only, so a non-200 would not recover the lost write.
func TestWebhook_InsertFailureStillAcknowledged(t *testing.T) {
	r, db := setupWebhookRouter(t)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	payload := completedPayload(`{"id":"sess_1","amount_total":690}`)
	w := postWebhook(r, payload, signPayload(testWebhookSecret, payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())
}
