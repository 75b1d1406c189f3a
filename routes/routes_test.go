package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/makkamasjid/masjid-management-backend/config"
	"github.com/makkamasjid/masjid-management-backend/database"
	"github.com/makkamasjid/masjid-management-backend/internal/announcement"
	"github.com/makkamasjid/masjid-management-backend/internal/auditlog"
	"github.com/makkamasjid/masjid-management-backend/internal/auth"
	"github.com/makkamasjid/masjid-management-backend/internal/imam"
	"github.com/makkamasjid/masjid-management-backend/internal/member"
	"github.com/makkamasjid/masjid-management-backend/internal/payment"
	"github.com/makkamasjid/masjid-management-backend/internal/prayertime"
)

const prayerPayload = `{
	"code": 200,
	"data": {
		"timings": {"Fajr": "05:12", "Dhuhr": "12:24", "Asr": "15:46", "Maghrib": "18:33", "Isha": "19:44"},
		"date": {"hijri": {"date": "15-09-1446", "month": {"en": "Ramadan"}, "year": "1446"}}
	}
}`

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite test database")
	require.NoError(t, db.AutoMigrate(
		&member.Member{},
		&payment.Payment{},
		&prayertime.PrayerTimes{},
		&imam.Imam{},
		&announcement.Announcement{},
		&auth.Admin{},
		&auditlog.AuditLog{},
	))
	database.DB = db

	prayerServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(prayerPayload))
	}))
	t.Cleanup(prayerServer.Close)

	cfg := &config.Config{
		PrayerAPIBaseURL:   prayerServer.URL,
		PrayerLatitude:     "12.9715987",
		PrayerLongitude:    "77.5945627",
		PrayerMethod:       "4",
		PrayerLocation:     "Ripponpet, Bangalore",
		AdminEmail:         "admin@makkamasjid.in",
		AdminPassword:      "changeme123",
		JWTAccessSecret:    "test-access-secret",
		JWTRefreshSecret:   "test-refresh-secret",
		JWTAccessTTLHours:  1,
		JWTRefreshTTLHours: 24,
	}
	require.NoError(t, auth.SeedAdminUser(db, cfg))

	r := gin.New()
	Setup(r, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestWelcomeAndHealth(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "MAKKA MASJID RIPPONPET - Management System API", body["message"])

	w = doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMemberPaymentDashboardFlow(t *testing.T) {
	r := setupTestRouter(t)

	// register a member
	w := doJSON(t, r, http.MethodPost, "/api/members", gin.H{
		"name":            "Abdul Rahman",
		"phone":           "9876543210",
		"address":         "12 Main Road, Ripponpet",
		"id_proof_type":   "Aadhar",
		"id_proof_number": "1234-5678-9012",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var m member.Member
	decodeBody(t, w, &m)
	require.NotEmpty(t, m.ID)
	assert.Regexp(t, `^MM[A-Z0-9]{8}$`, m.AccountNumber)

	// record a payment tagged with the current month
	currentMonth := time.Now().Format("2006-01")
	w = doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"member_id":    m.ID,
		"amount":       500.00,
		"payment_type": "monthly_chanda",
		"month_year":   currentMonth,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var p payment.Payment
	decodeBody(t, w, &p)
	assert.Regexp(t, `^RCP\d{8}[A-Z0-9]{6}$`, p.ReceiptNumber)
	assert.Equal(t, m.AccountNumber, p.MemberAccountNumber)

	// the dashboard reflects both
	w = doJSON(t, r, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalMembers       int64             `json:"total_members"`
		CommitteeMembers   int64             `json:"committee_members"`
		MonthlyCollections float64           `json:"monthly_collections"`
		RecentPayments     []payment.Payment `json:"recent_payments"`
	}
	decodeBody(t, w, &stats)
	assert.EqualValues(t, 1, stats.TotalMembers)
	assert.InDelta(t, 500.00, stats.MonthlyCollections, 0.001)
	require.Len(t, stats.RecentPayments, 1)
	assert.Equal(t, p.ID, stats.RecentPayments[0].ID)

	// receipt download
	req := httptest.NewRequest(http.MethodGet, "/api/payments/"+p.ID+"/receipt", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestErrorTaxonomy(t *testing.T) {
	r := setupTestRouter(t)

	// unknown member id
	w := doJSON(t, r, http.MethodGet, "/api/members/no-such-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "Member not found", body["error"])

	// payment against an unknown member
	w = doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"member_id":    "no-such-id",
		"amount":       100.0,
		"payment_type": "donation",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// malformed create body
	w = doJSON(t, r, http.MethodPost, "/api/members", gin.H{"name": "missing fields"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown receipt
	w = doJSON(t, r, http.MethodGet, "/api/payments/no-such-id/receipt", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImamSingleActiveRule(t *testing.T) {
	r := setupTestRouter(t)

	// empty registry serializes as null
	w := doJSON(t, r, http.MethodGet, "/api/imam", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	createBody := gin.H{
		"name":             "Maulana Yusuf",
		"phone":            "9876501234",
		"qualification":    "Alim Fazil",
		"experience_years": 8,
		"appointment_date": "2024-06-01",
	}
	w = doJSON(t, r, http.MethodPost, "/api/imam", createBody)
	require.Equal(t, http.StatusOK, w.Code)

	var i imam.Imam
	decodeBody(t, w, &i)
	assert.True(t, i.IsActive)

	// a second appointment is rejected while one is active
	w = doJSON(t, r, http.MethodPost, "/api/imam", createBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/imam", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var active imam.Imam
	decodeBody(t, w, &active)
	assert.Equal(t, i.ID, active.ID)
}

func TestPrayerTimesEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/prayer-times", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var times prayertime.PrayerTimes
	decodeBody(t, w, &times)
	assert.Equal(t, time.Now().Format("2006-01-02"), times.Date)
	assert.Equal(t, "05:12", times.Fajr)
	assert.Equal(t, "Ripponpet, Bangalore", times.Location)
}

func TestAnnouncementsEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/announcements", gin.H{
		"title":      "Jumma timing change",
		"content":    "Jumma prayers will start at 1:30 PM this week.",
		"created_by": "Secretary",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var a announcement.Announcement
	decodeBody(t, w, &a)
	assert.Equal(t, announcement.PriorityNormal, a.Priority)

	w = doJSON(t, r, http.MethodGet, "/api/announcements", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []announcement.Announcement
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := setupTestRouter(t)

	// no token
	w := doJSON(t, r, http.MethodGet, "/api/reports/members?format=csv", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// login for an access token
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@makkamasjid.in",
		"password": "changeme123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var tokens auth.TokenPair
	decodeBody(t, w, &tokens)
	require.NotEmpty(t, tokens.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/members?format=csv", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
}

func TestOnlinePaymentsDisabledWithoutGatewayKeys(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments/order", gin.H{
		"member_id":    "any",
		"amount":       100.0,
		"payment_type": "donation",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
