package types

type TableName string

func (t TableName) Name() string {
	return string(t)
}

const (
	TABLE_USER      TableName = "hl_user"
	TABLE_PROFILE   TableName = "hl_profile"
	TABLE_POST      TableName = "hl_post"
	TABLE_POST_META TableName = "hl_post_meta"
)
