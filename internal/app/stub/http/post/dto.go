package post

import (
	"jsonapi/internal/app/stub/data"
)

type IDInput struct {
	ID int `path:"id" minimum:"0"`
}

type ListOutput struct {
	Body []data.Item
}
