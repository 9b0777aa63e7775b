package quotation

import (
	"github.com/instacotiza/cotiza/internal/quotation/domain"
	"github.com/instacotiza/cotiza/internal/quotation/repository"
	"github.com/instacotiza/cotiza/internal/quotation/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("quotation.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
	fx.Invoke(autoMigrate),
)

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.QuotationRecord{})
}
