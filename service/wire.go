package service

import (
	"FlowHub/pkg/llm"
	"FlowHub/pkg/payment"
	"FlowHub/pkg/translate"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewEventPublisher,

	wire.Struct(new(InteractionService), "*"),
	wire.Bind(new(IInteractionService), new(*InteractionService)),

	wire.Struct(new(ShareService), "*"),
	wire.Bind(new(IShareService), new(*ShareService)),

	wire.Struct(new(ViewService), "*"),
	wire.Bind(new(IViewService), new(*ViewService)),

	wire.Struct(new(ContentService), "*"),
	wire.Bind(new(IContentService), new(*ContentService)),

	wire.Struct(new(ActivityService), "*"),
	wire.Bind(new(IActivityService), new(*ActivityService)),

	wire.Struct(new(SubscriptionService), "*"),
	wire.Bind(new(ISubscriptionService), new(*SubscriptionService)),

	wire.Struct(new(PlanService), "*"),
	wire.Bind(new(IPlanService), new(*PlanService)),

	wire.Struct(new(IdentityService), "*"),
	wire.Bind(new(IIdentityService), new(*IdentityService)),

	payment.NewStripeClient,
	wire.Bind(new(CheckoutProvider), new(*payment.StripeClient)),
	payment.NewWechatClient,
	wire.Bind(new(WechatPayer), new(*payment.WechatClient)),
	wire.Struct(new(PayService), "*"),
	wire.Bind(new(IPayService), new(*PayService)),

	llm.NewClient,
	wire.Bind(new(Completer), new(*llm.Client)),
	wire.Struct(new(AIService), "*"),
	wire.Bind(new(IAIService), new(*AIService)),

	translate.NewGoogleTranslator,
	wire.Bind(new(Translator), new(*translate.GoogleTranslator)),
	wire.Struct(new(TranslateService), "*"),
	wire.Bind(new(ITranslateService), new(*TranslateService)),

	NewOssService,
	wire.Bind(new(IOssService), new(*OssService)),

	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),
)
