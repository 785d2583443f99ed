package service

import (
	"FlowHub/config"
	"FlowHub/pkg/response"
	"FlowHub/types"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const maxCoverSize int64 = 10 << 20 // 10MB

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadCover 校验图片后上传封面，返回可访问地址
	UploadCover(ctx context.Context, header *multipart.FileHeader) (*types.UploadCoverResp, error)
	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error
}

type OssService struct {
	Client *oss.Client
	Conf   *config.OssConfig
}

func NewOssService(client *oss.Client, conf *config.OssConfig) *OssService {
	return &OssService{Client: client, Conf: conf}
}

func (s *OssService) UploadCover(ctx context.Context, header *multipart.FileHeader) (*types.UploadCoverResp, error) {
	if header == nil {
		return nil, response.ErrMissingParameter
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxCoverSize {
		return nil, response.InvalidParameter("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 读头校验后要重新上传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, response.InvalidParameter("unsupported image type: " + contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 只读尺寸，不解码全图
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, response.InvalidParameter("invalid image")
	}
	format = strings.ToLower(format)
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	if s.Client == nil {
		return nil, response.NewError(http.StatusInternalServerError, "Object storage not configured")
	}

	objectKey := fmt.Sprintf("cover/%s/%s%s", time.Now().Format("2006/01/02"), uuid.NewString(), ext)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.Conf.Bucket),
		Key:         oss.Ptr(objectKey),
		ContentType: oss.Ptr(contentType),
		Body:        io.LimitReader(seeker, maxCoverSize+1),
	}); err != nil {
		return nil, err
	}

	return &types.UploadCoverResp{
		URL:    s.publicURL(objectKey),
		Key:    objectKey,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func (s *OssService) publicURL(objectKey string) string {
	if s.Conf.CDNDomain != "" {
		return strings.TrimRight(s.Conf.CDNDomain, "/") + "/" + objectKey
	}
	return fmt.Sprintf("https://%s.oss-%s.aliyuncs.com/%s", s.Conf.Bucket, s.Conf.Region, objectKey)
}

func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	if objectKey == "" || !strings.HasPrefix(objectKey, "cover/") {
		return response.InvalidParameter("invalid object key")
	}
	if s.Client == nil {
		return response.NewError(http.StatusInternalServerError, "Object storage not configured")
	}
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
