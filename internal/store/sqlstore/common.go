package sqlstore

import (
	"context"
	"fmt"

	"github.com/breeew/hairlog-api/pkg/sqlstore"
	"github.com/breeew/hairlog-api/pkg/types"
)

type SqlProviderAchieve interface {
	GetMaster(ctx context.Context) sqlstore.SqlCommon
	GetReplica(ctx context.Context) sqlstore.SqlCommon
}

// CommonFields 每个store共用的表信息
type CommonFields struct {
	provider   SqlProviderAchieve
	table      types.TableName
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) {
	c.provider = p
}

func (c *CommonFields) SetTable(t types.TableName) {
	c.table = t
}

func (c *CommonFields) SetAllColumns(columns ...string) {
	c.allColumns = columns
}

func (c *CommonFields) GetTable() string {
	return c.table.Name()
}

func (c *CommonFields) GetAllColumns() []string {
	return c.allColumns
}

func (c *CommonFields) GetMaster(ctx context.Context) sqlstore.SqlCommon {
	return c.provider.GetMaster(ctx)
}

func (c *CommonFields) GetReplica(ctx context.Context) sqlstore.SqlCommon {
	return c.provider.GetReplica(ctx)
}

func ErrorSqlBuild(err error) error {
	return fmt.Errorf("sql build error: %w", err)
}
