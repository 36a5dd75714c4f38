package user

import (
	"jsonapi/internal/app/stub/data"
)

type ListInput struct {
	Username string `query:"username" doc:"Фильтр по username"`
}

type ListOutput struct {
	Body []data.Item
}

type IDInput struct {
	ID int `path:"id" minimum:"0" doc:"ID пользователя"`
}

type ItemOutput struct {
	Body data.Item
}

type CreateInput struct {
	Body data.Item
}

type UpdateInput struct {
	ID   int `path:"id" minimum:"0" doc:"ID пользователя"`
	Body data.Item
}
