package handler

import (
	"FlowHub/config"
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/pkg/database"
	"FlowHub/pkg/jwt"
	"FlowHub/pkg/response"
	"FlowHub/service"
	"FlowHub/types"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const testSecret = "handler-test-secret"

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(config.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared", false)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	verifier, err := jwt.NewVerifier(&config.Config{Jwt: &config.Jwt{Secret: testSecret}})
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}

	content := &service.ContentService{
		TutorialDAO: dao.NewTutorialDAO(db),
		UseCaseDAO:  dao.NewUseCaseDAO(db),
		BlogDAO:     dao.NewBlogDAO(db),
	}
	interaction := &Interaction{
		InteractionService: &service.InteractionService{LikeDAO: dao.NewLikeDAO(db), FavoriteDAO: dao.NewFavoriteDAO(db)},
		Verifier:           verifier,
	}
	share := &Share{
		ShareService: &service.ShareService{ShareDAO: dao.NewShareDAO(db)},
		ViewService:  &service.ViewService{ViewDAO: dao.NewViewDAO(db)},
		Verifier:     verifier,
	}
	user := &User{
		ActivityService: &service.ActivityService{ActivityDAO: dao.NewActivityDAO(db), Content: content},
		SubscriptionService: &service.SubscriptionService{
			SubscriptionDAO: dao.NewSubscriptionDAO(db),
			PlanDAO:         dao.NewPlanDAO(db),
			ViewDAO:         dao.NewViewDAO(db),
		},
		Verifier: verifier,
	}

	engine := gin.New()
	engine.Use(response.ErrorMiddleware())
	api := engine.Group("/api")
	interaction.RegisterRouter(api)
	share.RegisterRouter(api)
	user.RegisterRouter(api)
	return &testServer{engine: engine, db: db}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, subject string) string {
	t.Helper()
	tk, err := jwt.GenerateToken([]byte(testSecret), subject, subject+"@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return tk
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestLikes(t *testing.T) {
	s := newTestServer(t)
	body := `{"resourceType":"tutorial","resourceId":"t1"}`

	if w := s.do(t, http.MethodPost, "/api/likes", body, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous like = %d", w.Code)
	}

	w := s.do(t, http.MethodPost, "/api/likes", body, token(t, "user_1"))
	if w.Code != http.StatusOK {
		t.Fatalf("like = %d %s", w.Code, w.Body.String())
	}
	if resp := decode[types.ToggleResp](t, w); !resp.Success || resp.Action != "liked" {
		t.Fatalf("like resp = %+v", resp)
	}

	w = s.do(t, http.MethodGet, "/api/likes?resourceType=tutorial&resourceId=t1", "", "")
	if resp := decode[types.LikeStatusResp](t, w); resp.Count != 1 || resp.IsLiked {
		t.Fatalf("public status = %+v", resp)
	}
	w = s.do(t, http.MethodGet, "/api/likes?resourceType=tutorial&resourceId=t1&userId=user_1", "", "")
	if resp := decode[types.LikeStatusResp](t, w); !resp.IsLiked {
		t.Fatalf("user status = %+v", resp)
	}

	w = s.do(t, http.MethodPost, "/api/likes", body, token(t, "user_1"))
	if resp := decode[types.ToggleResp](t, w); resp.Action != "unliked" {
		t.Fatalf("unlike resp = %+v", resp)
	}
}

func TestLikes_Validation(t *testing.T) {
	s := newTestServer(t)
	tk := token(t, "user_1")

	w := s.do(t, http.MethodPost, "/api/likes", `{"resourceType":"video","resourceId":"v1"}`, tk)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid type = %d", w.Code)
	}
	if resp := decode[response.ErrorBody](t, w); resp.Error != "Invalid resource type" {
		t.Fatalf("error = %q", resp.Error)
	}

	w = s.do(t, http.MethodPost, "/api/favorites", `{"resourceType":"blog"}`, tk)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing id = %d", w.Code)
	}
	if resp := decode[response.ErrorBody](t, w); resp.Error != "Missing required parameters" {
		t.Fatalf("error = %q", resp.Error)
	}

	if w := s.do(t, http.MethodGet, "/api/favorites?resourceType=blog", "", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("status without id = %d", w.Code)
	}
}

func TestShareAndViews(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/share", `{"resourceType":"blog","resourceId":"b1","platform":"linkedin"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous share = %d %s", w.Code, w.Body.String())
	}
	w = s.do(t, http.MethodPost, "/api/share", `{"resourceType":"blog","resourceId":"b1","platform":"orkut"}`, token(t, "user_1"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid platform = %d", w.Code)
	}
	var shares []models.ShareRecord
	s.db.Find(&shares)
	if len(shares) != 1 || shares[0].UserID != nil {
		t.Fatalf("share rows = %+v", shares)
	}

	for i := 0; i < 2; i++ {
		if w := s.do(t, http.MethodPost, "/api/views", `{"resourceType":"use_case","resourceId":"c1"}`, ""); w.Code != http.StatusOK {
			t.Fatalf("view = %d", w.Code)
		}
	}
	w = s.do(t, http.MethodGet, "/api/views?resourceType=use_case&resourceId=c1", "", "")
	if resp := decode[types.CountResp](t, w); resp.Count != 2 {
		t.Fatalf("view count = %d", resp.Count)
	}
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t)
	tk := token(t, "user_1")

	if w := s.do(t, http.MethodGet, "/api/user/activities", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous activities = %d", w.Code)
	}

	s.do(t, http.MethodPost, "/api/likes", `{"resourceType":"tutorial","resourceId":"t1"}`, tk)
	s.do(t, http.MethodPost, "/api/share", `{"resourceType":"blog","resourceId":"b1","platform":"wechat"}`, tk)

	w := s.do(t, http.MethodGet, "/api/user/activities?type=all&limit=1", "", tk)
	if w.Code != http.StatusOK {
		t.Fatalf("activities = %d %s", w.Code, w.Body.String())
	}
	resp := decode[types.ActivityListResp](t, w)
	if len(resp.Activities) != 1 || !resp.Pagination.HasMore || resp.Pagination.Limit != 1 {
		t.Fatalf("activities resp = %+v", resp)
	}

	if w := s.do(t, http.MethodGet, "/api/user/activities?type=comments", "", tk); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid type = %d", w.Code)
	}

	w = s.do(t, http.MethodGet, "/api/user/subscription", "", tk)
	sub := decode[types.SubscriptionResp](t, w)
	if sub.Subscription != nil || sub.Plan == nil || sub.Plan.Name != "Free" {
		t.Fatalf("subscription = %+v", sub)
	}

	w = s.do(t, http.MethodGet, "/api/user/quota", "", tk)
	quota := decode[types.QuotaResp](t, w)
	if quota.Tutorials.Limit != 5 || quota.Tutorials.Remaining != 5 {
		t.Fatalf("quota = %+v", quota)
	}
}
