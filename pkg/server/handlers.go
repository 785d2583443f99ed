package server

import (
	"FlowHub/handler"
)

type Handlers struct {
	Interaction *handler.Interaction
	Share       *handler.Share
	User        *handler.User
	Webhook     *handler.Webhook
	Pay         *handler.Pay
	AI          *handler.AI
	Content     *handler.Content
	Admin       *handler.Admin
}
