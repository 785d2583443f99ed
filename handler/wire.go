package handler

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(Interaction), "*"),
	wire.Struct(new(Share), "*"),
	wire.Struct(new(User), "*"),
	wire.Struct(new(Webhook), "*"),
	wire.Struct(new(Pay), "*"),
	wire.Struct(new(AI), "*"),
	wire.Struct(new(Content), "*"),
	wire.Struct(new(Admin), "*"),
)
