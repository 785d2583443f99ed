package models

// 资源类型
const (
	ResourceTutorial = "tutorial"
	ResourceUseCase  = "use_case"
	ResourceBlog     = "blog"
)

// 分享平台
const (
	PlatformTwitter  = "twitter"
	PlatformLinkedin = "linkedin"
	PlatformFacebook = "facebook"
	PlatformWechat   = "wechat"
	PlatformWeibo    = "weibo"
	PlatformCopyLink = "copy_link"
)

var (
	ResourceTypes = []string{ResourceTutorial, ResourceUseCase, ResourceBlog}
	Platforms     = []string{PlatformTwitter, PlatformLinkedin, PlatformFacebook, PlatformWechat, PlatformWeibo, PlatformCopyLink}
)

// ResourceKey 互动指向的内容
type ResourceKey struct {
	Type string
	ID   string
}

// All 参与 AutoMigrate 的全部表
func All() []any {
	return []any{
		&User{},
		&Tutorial{},
		&UseCase{},
		&Blog{},
		&Like{},
		&Favorite{},
		&ShareRecord{},
		&ViewRecord{},
		&SubscriptionPlan{},
		&UserSubscription{},
		&PaymentOrder{},
	}
}
