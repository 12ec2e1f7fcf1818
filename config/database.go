package config

import (
	"PersonaGo/models"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 初始化数据库连接
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	// 设置连接池
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自动迁移表结构
	if err := MigrateDB(DB); err != nil {
		return fmt.Errorf("数据库迁移失败: %v", err)
	}

	// 写入种子数据
	if err := SeedDB(DB); err != nil {
		return fmt.Errorf("种子数据写入失败: %v", err)
	}

	return nil
}

// MigrateDB 进行数据库表结构迁移
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Trait{},
		&models.Question{},
		&models.ResultType{},
		&models.SurveyResponse{},
		&models.ChatSession{},
	)
}

// SeedDB 幂等写入固定的特质、结果区间和默认问题
// 主键固定，重复启动时已存在的行保持不变
func SeedDB(db *gorm.DB) error {
	traits := []models.Trait{
		{ID: 1, Name: "외향성", Description: "사람들과의 상호작용을 즐기는 정도"},
		{ID: 2, Name: "신경성", Description: "감정적 안정성의 정도"},
		{ID: 3, Name: "성실성", Description: "계획적이고 체계적인 정도"},
		{ID: 4, Name: "개방성", Description: "새로운 경험에 대한 개방성"},
		{ID: 5, Name: "친화성", Description: "타인과의 협력과 신뢰의 정도"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&traits).Error; err != nil {
		return err
	}

	resultTypes := []models.ResultType{
		{ID: 1, Name: "매우 낮음", Description: "해당 특질이 매우 낮은 수준", MinPercentage: 0, MaxPercentage: 20},
		{ID: 2, Name: "낮음", Description: "해당 특질이 낮은 수준", MinPercentage: 20, MaxPercentage: 40},
		{ID: 3, Name: "보통", Description: "해당 특질이 보통 수준", MinPercentage: 40, MaxPercentage: 60},
		{ID: 4, Name: "높음", Description: "해당 특질이 높은 수준", MinPercentage: 60, MaxPercentage: 80},
		{ID: 5, Name: "매우 높음", Description: "해당 특질이 매우 높은 수준", MinPercentage: 80, MaxPercentage: 100},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&resultTypes).Error; err != nil {
		return err
	}

	questions := []models.Question{
		{ID: 1, TraitID: 1, QuestionText: "나는 새로운 사람들과 만나는 것을 즐긴다.", IsActive: true},
		{ID: 2, TraitID: 1, QuestionText: "나는 큰 그룹에서 이야기하는 것을 좋아한다.", IsActive: true},
		{ID: 3, TraitID: 2, QuestionText: "나는 자주 걱정한다.", IsActive: true},
		{ID: 4, TraitID: 2, QuestionText: "나는 스트레스를 받으면 쉽게 화가 난다.", IsActive: true},
		{ID: 5, TraitID: 3, QuestionText: "나는 계획을 세우는 것을 좋아한다.", IsActive: true},
		{ID: 6, TraitID: 3, QuestionText: "나는 마감일을 잘 지킨다.", IsActive: true},
		{ID: 7, TraitID: 4, QuestionText: "나는 새로운 아이디어에 열려있다.", IsActive: true},
		{ID: 8, TraitID: 4, QuestionText: "나는 창의적인 활동을 즐긴다.", IsActive: true},
		{ID: 9, TraitID: 5, QuestionText: "나는 다른 사람들을 신뢰한다.", IsActive: true},
		{ID: 10, TraitID: 5, QuestionText: "나는 다른 사람들과 협력하는 것을 좋아한다.", IsActive: true},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&questions).Error; err != nil {
		return err
	}

	return nil
}
