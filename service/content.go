package service

import (
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/pkg/response"
	"FlowHub/pkg/utils"
	"FlowHub/types"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const blogExcerptRunes = 200

var _ IContentService = (*ContentService)(nil)

type IContentService interface {
	List(ctx context.Context, resourceType string, q *types.ContentListQuery) (*types.ContentListResp, error)
	GetBySlug(ctx context.Context, resourceType, slug string) (any, error)
	Search(ctx context.Context, keyword string) (*types.SearchResp, error)
	Home(ctx context.Context) (*types.HomeResp, error)
	// Summary 活动流使用的资源标题，资源不存在时返回 nil, nil
	Summary(ctx context.Context, key models.ResourceKey) (*models.ResourceSummary, error)

	AdminList(ctx context.Context, resourceType string, q *types.ContentListQuery) (*types.ContentListResp, error)
	Get(ctx context.Context, resourceType, id string) (any, error)
	Create(ctx context.Context, resourceType, authorID string, req *types.ContentReq) (any, error)
	Update(ctx context.Context, resourceType, id string, req *types.ContentReq) (any, error)
	Publish(ctx context.Context, resourceType, id string) error
	Delete(ctx context.Context, resourceType, id string) error
}

type ContentService struct {
	TutorialDAO *dao.ContentDAO[models.Tutorial]
	UseCaseDAO  *dao.ContentDAO[models.UseCase]
	BlogDAO     *dao.ContentDAO[models.Blog]
}

func normalizeContentQuery(q *types.ContentListQuery) {
	if q.Page < 1 {
		q.Page = types.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = types.DefaultContentLimit
	}
	if q.Limit > types.MaxContentLimit {
		q.Limit = types.MaxContentLimit
	}
}

func listPublished[T models.Content](ctx context.Context, d *dao.ContentDAO[T], q *types.ContentListQuery) (*types.ContentListResp, error) {
	items, total, err := d.ListPublished(ctx, q.Tag, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		return nil, err
	}
	return &types.ContentListResp{Items: items, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func listAll[T models.Content](ctx context.Context, d *dao.ContentDAO[T], q *types.ContentListQuery) (*types.ContentListResp, error) {
	items, total, err := d.ListAll(ctx, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		return nil, err
	}
	return &types.ContentListResp{Items: items, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *ContentService) List(ctx context.Context, resourceType string, q *types.ContentListQuery) (*types.ContentListResp, error) {
	normalizeContentQuery(q)
	switch resourceType {
	case models.ResourceTutorial:
		return listPublished(ctx, s.TutorialDAO, q)
	case models.ResourceUseCase:
		return listPublished(ctx, s.UseCaseDAO, q)
	case models.ResourceBlog:
		return listPublished(ctx, s.BlogDAO, q)
	}
	return nil, response.ErrInvalidResourceType
}

func (s *ContentService) AdminList(ctx context.Context, resourceType string, q *types.ContentListQuery) (*types.ContentListResp, error) {
	normalizeContentQuery(q)
	switch resourceType {
	case models.ResourceTutorial:
		return listAll(ctx, s.TutorialDAO, q)
	case models.ResourceUseCase:
		return listAll(ctx, s.UseCaseDAO, q)
	case models.ResourceBlog:
		return listAll(ctx, s.BlogDAO, q)
	}
	return nil, response.ErrInvalidResourceType
}

// found 把 DAO 返回的 nil 转成 404，避免 interface 持有 nil 指针
func found[T any](item *T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, response.ErrNotFound
	}
	return item, nil
}

func (s *ContentService) GetBySlug(ctx context.Context, resourceType, slug string) (any, error) {
	switch resourceType {
	case models.ResourceTutorial:
		return found(s.TutorialDAO.GetPublishedBySlug(ctx, slug))
	case models.ResourceUseCase:
		return found(s.UseCaseDAO.GetPublishedBySlug(ctx, slug))
	case models.ResourceBlog:
		return found(s.BlogDAO.GetPublishedBySlug(ctx, slug))
	}
	return nil, response.ErrInvalidResourceType
}

func (s *ContentService) Get(ctx context.Context, resourceType, id string) (any, error) {
	switch resourceType {
	case models.ResourceTutorial:
		return found(s.TutorialDAO.GetByID(ctx, id))
	case models.ResourceUseCase:
		return found(s.UseCaseDAO.GetByID(ctx, id))
	case models.ResourceBlog:
		return found(s.BlogDAO.GetByID(ctx, id))
	}
	return nil, response.ErrInvalidResourceType
}

func (s *ContentService) Summary(ctx context.Context, key models.ResourceKey) (*models.ResourceSummary, error) {
	switch key.Type {
	case models.ResourceTutorial:
		return s.TutorialDAO.Summary(ctx, key.ID)
	case models.ResourceUseCase:
		return s.UseCaseDAO.Summary(ctx, key.ID)
	case models.ResourceBlog:
		return s.BlogDAO.Summary(ctx, key.ID)
	}
	return nil, response.ErrInvalidResourceType
}

func (s *ContentService) Search(ctx context.Context, keyword string) (*types.SearchResp, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, response.ErrMissingParameter
	}
	resp := &types.SearchResp{}
	err := fanOut(ctx,
		func(ctx context.Context) (err error) {
			resp.Tutorials, err = s.TutorialDAO.Search(ctx, keyword, types.SearchLimit)
			return
		},
		func(ctx context.Context) (err error) {
			resp.UseCases, err = s.UseCaseDAO.Search(ctx, keyword, types.SearchLimit)
			return
		},
		func(ctx context.Context) (err error) {
			resp.Blogs, err = s.BlogDAO.Search(ctx, keyword, types.SearchLimit)
			return
		},
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Home 首页三类内容各取最新几条，并发查询
func (s *ContentService) Home(ctx context.Context) (*types.HomeResp, error) {
	resp := &types.HomeResp{}
	err := fanOut(ctx,
		func(ctx context.Context) (err error) {
			resp.Tutorials, _, err = s.TutorialDAO.ListPublished(ctx, "", 0, types.HomeSectionSize)
			return
		},
		func(ctx context.Context) (err error) {
			resp.UseCases, _, err = s.UseCaseDAO.ListPublished(ctx, "", 0, types.HomeSectionSize)
			return
		},
		func(ctx context.Context) (err error) {
			resp.Blogs, _, err = s.BlogDAO.ListPublished(ctx, "", 0, types.HomeSectionSize)
			return
		},
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func fanOut(ctx context.Context, fns ...func(ctx context.Context) error) error {
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for _, fn := range fns {
		p.Go(fn)
	}
	return p.Wait()
}

func (s *ContentService) Create(ctx context.Context, resourceType, authorID string, req *types.ContentReq) (any, error) {
	base, err := newBase(req)
	if err != nil {
		return nil, err
	}
	base.AuthorID = authorID
	base.Status = models.ContentDraft

	switch resourceType {
	case models.ResourceTutorial:
		item := &models.Tutorial{ContentBase: *base}
		applyTutorial(item, req)
		return item, wrapUnique(s.TutorialDAO.Create(ctx, item))
	case models.ResourceUseCase:
		item := &models.UseCase{ContentBase: *base}
		if err := applyUseCase(item, req); err != nil {
			return nil, err
		}
		return item, wrapUnique(s.UseCaseDAO.Create(ctx, item))
	case models.ResourceBlog:
		item := &models.Blog{ContentBase: *base}
		applyBlog(item, req)
		return item, wrapUnique(s.BlogDAO.Create(ctx, item))
	}
	return nil, response.ErrInvalidResourceType
}

func (s *ContentService) Update(ctx context.Context, resourceType, id string, req *types.ContentReq) (any, error) {
	switch resourceType {
	case models.ResourceTutorial:
		item, err := s.TutorialDAO.GetByID(ctx, id)
		if err != nil || item == nil {
			return nil, notFoundOr(err)
		}
		if err := applyBase(&item.ContentBase, req); err != nil {
			return nil, err
		}
		applyTutorial(item, req)
		return item, wrapUnique(s.TutorialDAO.Update(ctx, item))
	case models.ResourceUseCase:
		item, err := s.UseCaseDAO.GetByID(ctx, id)
		if err != nil || item == nil {
			return nil, notFoundOr(err)
		}
		if err := applyBase(&item.ContentBase, req); err != nil {
			return nil, err
		}
		if err := applyUseCase(item, req); err != nil {
			return nil, err
		}
		return item, wrapUnique(s.UseCaseDAO.Update(ctx, item))
	case models.ResourceBlog:
		item, err := s.BlogDAO.GetByID(ctx, id)
		if err != nil || item == nil {
			return nil, notFoundOr(err)
		}
		if err := applyBase(&item.ContentBase, req); err != nil {
			return nil, err
		}
		applyBlog(item, req)
		return item, wrapUnique(s.BlogDAO.Update(ctx, item))
	}
	return nil, response.ErrInvalidResourceType
}

func (s *ContentService) Publish(ctx context.Context, resourceType, id string) error {
	var (
		ok  bool
		err error
	)
	now := time.Now()
	switch resourceType {
	case models.ResourceTutorial:
		ok, err = s.TutorialDAO.Publish(ctx, id, now)
	case models.ResourceUseCase:
		ok, err = s.UseCaseDAO.Publish(ctx, id, now)
	case models.ResourceBlog:
		ok, err = s.BlogDAO.Publish(ctx, id, now)
	default:
		return response.ErrInvalidResourceType
	}
	if err != nil {
		return err
	}
	if !ok {
		return response.ErrNotFound
	}
	return nil
}

func (s *ContentService) Delete(ctx context.Context, resourceType, id string) error {
	var (
		ok  bool
		err error
	)
	switch resourceType {
	case models.ResourceTutorial:
		ok, err = s.TutorialDAO.Delete(ctx, id)
	case models.ResourceUseCase:
		ok, err = s.UseCaseDAO.Delete(ctx, id)
	case models.ResourceBlog:
		ok, err = s.BlogDAO.Delete(ctx, id)
	default:
		return response.ErrInvalidResourceType
	}
	if err != nil {
		return err
	}
	if !ok {
		return response.ErrNotFound
	}
	return nil
}

func notFoundOr(err error) error {
	if err != nil {
		return err
	}
	return response.ErrNotFound
}

func wrapUnique(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return response.NewError(http.StatusConflict, "Slug already exists")
	}
	return err
}

func newBase(req *types.ContentReq) (*models.ContentBase, error) {
	base := &models.ContentBase{}
	if err := applyBase(base, req); err != nil {
		return nil, err
	}
	return base, nil
}

func applyBase(base *models.ContentBase, req *types.ContentReq) error {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" || strings.ContainsAny(slug, " /?#") {
		return response.InvalidParameter("Invalid slug")
	}
	tags, err := json.Marshal(nonNil(req.Tags))
	if err != nil {
		return err
	}
	base.Slug = slug
	base.Title = req.Title
	base.TitleZh = req.TitleZh
	base.Summary = req.Summary
	base.SummaryZh = req.SummaryZh
	base.Body = req.Body
	base.BodyZh = req.BodyZh
	base.CoverURL = req.CoverURL
	base.Tags = datatypes.JSON(tags)
	return nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func applyTutorial(item *models.Tutorial, req *types.ContentReq) {
	item.Difficulty = req.Difficulty
	item.DurationMinutes = req.DurationMinutes
}

func applyUseCase(item *models.UseCase, req *types.ContentReq) error {
	item.Industry = req.Industry
	if len(req.WorkflowJSON) > 0 {
		if !json.Valid(req.WorkflowJSON) {
			return response.InvalidParameter("Invalid workflowJson")
		}
		item.WorkflowJSON = datatypes.JSON(req.WorkflowJSON)
	}
	return nil
}

// applyBlog 未填写摘要时从正文生成
func applyBlog(item *models.Blog, req *types.ContentReq) {
	item.Category = req.Category
	item.Excerpt = req.Excerpt
	if item.Excerpt == "" {
		item.Excerpt = utils.Excerpt(req.Body, blogExcerptRunes)
	}
}
