package service

import (
	"FlowHub/config"
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/pkg/database"
	"FlowHub/pkg/response"
	"FlowHub/types"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	conf, err := config.Parse([]byte("app:\n  env: test\n"))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return conf
}

func newSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{
		SubscriptionDAO: dao.NewSubscriptionDAO(db),
		PlanDAO:         dao.NewPlanDAO(db),
		ViewDAO:         dao.NewViewDAO(db),
	}
}

func seedPlans(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := (&PlanService{PlanDAO: dao.NewPlanDAO(db)}).Seed(context.Background()); err != nil {
		t.Fatalf("seed plans: %v", err)
	}
}

func bizCode(err error) int {
	var biz *response.BizError
	if errors.As(err, &biz) {
		return biz.Code
	}
	return 0
}

func TestValidateResource(t *testing.T) {
	if _, err := ValidateResource("", "x"); !errors.Is(err, response.ErrMissingParameter) {
		t.Fatalf("missing type: %v", err)
	}
	if _, err := ValidateResource("video", "x"); !errors.Is(err, response.ErrInvalidResourceType) {
		t.Fatalf("bad type: %v", err)
	}
	key, err := ValidateResource(models.ResourceBlog, "b1")
	if err != nil || key.Type != models.ResourceBlog || key.ID != "b1" {
		t.Fatalf("ValidateResource = %+v, %v", key, err)
	}
	if err := ValidatePlatform("myspace"); !errors.Is(err, response.ErrInvalidPlatform) {
		t.Fatalf("bad platform: %v", err)
	}
}

func TestInteractionService(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := &InteractionService{LikeDAO: dao.NewLikeDAO(db), FavoriteDAO: dao.NewFavoriteDAO(db)}
	key := models.ResourceKey{Type: models.ResourceTutorial, ID: "t1"}

	action, err := s.ToggleLike(ctx, "u1", key)
	if err != nil || action != "liked" {
		t.Fatalf("ToggleLike = %q, %v", action, err)
	}

	status, err := s.LikeStatus(ctx, key, "")
	if err != nil {
		t.Fatalf("LikeStatus: %v", err)
	}
	if status.IsLiked || status.Count != 1 {
		t.Fatalf("anonymous status = %+v", status)
	}
	status, _ = s.LikeStatus(ctx, key, "u1")
	if !status.IsLiked {
		t.Fatal("u1 should see own like")
	}

	action, _ = s.ToggleLike(ctx, "u1", key)
	if action != "unliked" {
		t.Fatalf("second toggle = %q", action)
	}

	action, _ = s.ToggleFavorite(ctx, "u1", key)
	if action != "favorited" {
		t.Fatalf("ToggleFavorite = %q", action)
	}
	fav, _ := s.FavoriteStatus(ctx, key, "u2")
	if fav.IsFavorited || fav.Count != 1 {
		t.Fatalf("u2 favorite status = %+v", fav)
	}
}

func TestShareRecord_InvalidPlatformStoresNothing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	shares := dao.NewShareDAO(db)
	s := &ShareService{ShareDAO: shares}

	err := s.Record(ctx, &types.ShareReq{ResourceReq: types.ResourceReq{ResourceType: models.ResourceBlog, ResourceID: "b1"}, Platform: "myspace"}, nil, "1.2.3.4")
	if bizCode(err) != 400 {
		t.Fatalf("want 400, got %v", err)
	}
	if n, _ := shares.Count(ctx, "1 = 1"); n != 0 {
		t.Fatalf("stored %d rows", n)
	}

	uid := "u1"
	if err := s.Record(ctx, &types.ShareReq{ResourceReq: types.ResourceReq{ResourceType: models.ResourceBlog, ResourceID: "b1"}, Platform: models.PlatformWeibo}, &uid, "1.2.3.4"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(ctx, &types.ShareReq{ResourceReq: types.ResourceReq{ResourceType: models.ResourceBlog, ResourceID: "b1"}, Platform: models.PlatformCopyLink}, nil, "5.6.7.8"); err != nil {
		t.Fatalf("anonymous Record: %v", err)
	}
	if n, _ := shares.CountByResource(ctx, models.ResourceKey{Type: models.ResourceBlog, ID: "b1"}); n != 2 {
		t.Fatalf("share count = %d", n)
	}
}

func TestViewService(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := &ViewService{ViewDAO: dao.NewViewDAO(db)}
	key := models.ResourceKey{Type: models.ResourceUseCase, ID: "c1"}

	for i := 0; i < 3; i++ {
		if err := s.Record(ctx, key, nil, "203.0.113.7"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if n, _ := s.Count(ctx, key); n != 3 {
		t.Fatalf("views = %d", n)
	}
	var rec models.ViewRecord
	db.First(&rec)
	if rec.IPHash == "" || rec.IPHash == "203.0.113.7" {
		t.Fatalf("ip must be stored hashed, got %q", rec.IPHash)
	}
}

func TestSubscription_FreeWithoutRow(t *testing.T) {
	ctx := context.Background()
	s := newSubscriptionService(newTestDB(t))

	resp, err := s.Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.Subscription != nil {
		t.Fatalf("unexpected subscription %+v", resp.Subscription)
	}
	if resp.Plan.Name != "Free" || resp.Plan.MaxUseCases != 10 || resp.Plan.MaxTutorials != 5 || resp.Plan.MaxBlogs != 3 {
		t.Fatalf("unexpected free plan %+v", resp.Plan)
	}
}

func TestSubscription_ActivateAndQuota(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedPlans(t, db)
	s := newSubscriptionService(db)

	if err := s.Activate(ctx, &Activation{UserID: "u1", PlanID: "gold"}); bizCode(err) != 400 {
		t.Fatalf("unknown plan: %v", err)
	}

	now := time.Now()
	if err := s.Activate(ctx, &Activation{UserID: "u1", PlanID: "pro", Provider: "stripe", ExternalID: "sub_1", Start: now, End: now.AddDate(0, 1, 0)}); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	resp, _ := s.Get(ctx, "u1")
	if resp.Subscription == nil || resp.Plan.ID != "pro" || resp.Plan.NameZh != "专业版" {
		t.Fatalf("Get after activate = %+v", resp)
	}

	uid := "u1"
	views := dao.NewViewDAO(db)
	for _, id := range []string{"c1", "c1", "c2"} {
		views.Create(ctx, &models.ViewRecord{UserID: &uid, ResourceType: models.ResourceUseCase, ResourceID: id})
	}
	quota, err := s.Quota(ctx, "u1")
	if err != nil {
		t.Fatalf("Quota: %v", err)
	}
	if quota.UseCases.Used != 2 || quota.UseCases.Limit != 100 || quota.UseCases.Remaining != 98 {
		t.Fatalf("use case quota = %+v", quota.UseCases)
	}

	found, err := s.UpdateExternal(ctx, "sub_1", func(sub *models.UserSubscription) {
		sub.Status = models.SubscriptionCanceled
	})
	if err != nil || !found {
		t.Fatalf("UpdateExternal = %v, %v", found, err)
	}
	quota, _ = s.Quota(ctx, "u1")
	if quota.Plan.ID != "free" || quota.Blogs.Limit != 3 {
		t.Fatalf("canceled subscription must fall back to free, got %+v", quota.Plan)
	}
}

func TestQuotaItemUnlimited(t *testing.T) {
	item := quotaItem(42, models.Unlimited)
	if item.Remaining != models.Unlimited || item.Limit != models.Unlimited {
		t.Fatalf("unlimited = %+v", item)
	}
	if item := quotaItem(7, 5); item.Remaining != 0 {
		t.Fatalf("over quota remaining = %d", item.Remaining)
	}
}

func TestActivityService(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	content := &ContentService{
		TutorialDAO: dao.NewTutorialDAO(db),
		UseCaseDAO:  dao.NewUseCaseDAO(db),
		BlogDAO:     dao.NewBlogDAO(db),
	}
	tut := &models.Tutorial{ContentBase: models.ContentBase{Slug: "intro", Title: "Intro", TitleZh: "入门", Status: models.ContentPublished}}
	if err := content.TutorialDAO.Create(ctx, tut); err != nil {
		t.Fatalf("create tutorial: %v", err)
	}

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	db.Create(&models.Like{UserID: "u1", ResourceType: models.ResourceTutorial, ResourceID: tut.ID, CreatedAt: base})
	db.Create(&models.Favorite{UserID: "u1", ResourceType: models.ResourceBlog, ResourceID: "missing", CreatedAt: base.Add(time.Minute)})
	db.Create(&models.Like{UserID: "u1", ResourceType: models.ResourceBlog, ResourceID: "missing", CreatedAt: base.Add(2 * time.Minute)})

	s := &ActivityService{ActivityDAO: dao.NewActivityDAO(db), Content: content}

	resp, err := s.List(ctx, "u1", &types.ActivityQuery{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Activities) != 2 || !resp.Pagination.HasMore || resp.Pagination.Page != 1 {
		t.Fatalf("first page = %+v", resp.Pagination)
	}
	if resp.Activities[0].CreatedAt.Before(resp.Activities[1].CreatedAt) {
		t.Fatal("activities must be newest first")
	}

	resp, _ = s.List(ctx, "u1", &types.ActivityQuery{Type: types.ActivityTypeLikes, Page: 1, Limit: 10})
	if len(resp.Activities) != 2 || resp.Pagination.HasMore {
		t.Fatalf("likes = %d, hasMore=%v", len(resp.Activities), resp.Pagination.HasMore)
	}
	last := resp.Activities[1]
	if last.Resource == nil || last.Resource.TitleZh != "入门" {
		t.Fatalf("tutorial like not enriched: %+v", last)
	}
	if resp.Activities[0].Resource != nil {
		t.Fatal("missing resource must stay nil")
	}

	if _, err := s.List(ctx, "u1", &types.ActivityQuery{Type: "comments"}); bizCode(err) != 400 {
		t.Fatalf("invalid type: %v", err)
	}
}

func TestNormalizeActivityQuery(t *testing.T) {
	q := &types.ActivityQuery{Page: -3, Limit: 1000}
	if err := NormalizeActivityQuery(q); err != nil {
		t.Fatal(err)
	}
	if q.Type != types.ActivityTypeAll || q.Page != 1 || q.Limit != types.MaxActivityLimit {
		t.Fatalf("normalized = %+v", q)
	}
}

func TestNormalizeActivityQuery_HugePage(t *testing.T) {
	q := &types.ActivityQuery{Page: math.MaxInt, Limit: types.MaxActivityLimit}
	if err := NormalizeActivityQuery(q); err != nil {
		t.Fatal(err)
	}
	if q.Page != types.MaxActivityPage {
		t.Fatalf("page = %d", q.Page)
	}
	if offset := (q.Page - 1) * q.Limit; offset < 0 || offset > math.MaxInt32 {
		t.Fatalf("offset = %d", offset)
	}
}

func TestContentService_CreatePublishSearch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := &ContentService{
		TutorialDAO: dao.NewTutorialDAO(db),
		UseCaseDAO:  dao.NewUseCaseDAO(db),
		BlogDAO:     dao.NewBlogDAO(db),
	}

	req := &types.ContentReq{Slug: "webhook-basics", Title: "Webhook basics", Body: "<p>Receive &amp; verify events</p>", Tags: []string{"webhook"}}
	item, err := s.Create(ctx, models.ResourceBlog, "admin", req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	blog := item.(*models.Blog)
	if blog.Status != models.ContentDraft || blog.Excerpt == "" {
		t.Fatalf("created blog = %+v", blog)
	}

	if _, err := s.Create(ctx, models.ResourceBlog, "admin", req); bizCode(err) != 409 {
		t.Fatalf("duplicate slug: %v", err)
	}

	if _, err := s.GetBySlug(ctx, models.ResourceBlog, "webhook-basics"); bizCode(err) != 404 {
		t.Fatalf("draft visible: %v", err)
	}
	if err := s.Publish(ctx, models.ResourceBlog, blog.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if _, err := s.GetBySlug(ctx, models.ResourceBlog, "webhook-basics"); err != nil {
		t.Fatalf("GetBySlug after publish: %v", err)
	}

	res, err := s.Search(ctx, "webhook")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if blogs := res.Blogs.([]*models.Blog); len(blogs) != 1 {
		t.Fatalf("search blogs = %d", len(blogs))
	}

	if err := s.Delete(ctx, models.ResourceBlog, blog.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, models.ResourceBlog, blog.ID); bizCode(err) != 404 {
		t.Fatalf("second delete: %v", err)
	}
}
