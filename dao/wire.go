//go:build wireinject

package dao

import (
	"FlowHub/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewLikeDAO,
	NewFavoriteDAO,
	NewShareDAO,
	NewViewDAO,
	NewActivityDAO,
	NewSubscriptionDAO,
	NewPlanDAO,
	NewPaymentOrderDAO,
	NewTutorialDAO,
	NewUseCaseDAO,
	NewBlogDAO,
	cache.NewWebhookDedup,
)
