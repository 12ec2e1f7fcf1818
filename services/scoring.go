package services

import (
	"PersonaGo/models"
	"fmt"

	"gorm.io/gorm"
)

// LookupQuestionTraits 一次性批量查出问题到特质的映射
// 提交里的所有问题ID一条 IN 查询解决，之后的聚合在内存中同步完成
func LookupQuestionTraits(db *gorm.DB, responses []models.QuestionResponse) (map[uint]uint, error) {
	ids := make([]uint, 0, len(responses))
	seen := make(map[uint]bool, len(responses))
	for _, r := range responses {
		if !seen[r.QuestionID] {
			seen[r.QuestionID] = true
			ids = append(ids, r.QuestionID)
		}
	}

	var questions []models.Question
	if err := db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}

	mapping := make(map[uint]uint, len(questions))
	for _, q := range questions {
		mapping[q.ID] = q.TraitID
	}
	return mapping, nil
}

// ComputeTraitScores 按特质聚合作答并折算成百分比
// 百分比 = 100 * 平均分 / 7；没有作答的特质不出现在结果里
// 同一问题的重复作答全部计入平均，不做覆盖
func ComputeTraitScores(responses []models.QuestionResponse, questionTraits map[uint]uint) (map[uint]float64, error) {
	sums := make(map[uint]int)
	counts := make(map[uint]int)

	for _, r := range responses {
		traitID, ok := questionTraits[r.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownQuestion, r.QuestionID)
		}
		sums[traitID] += r.Score
		counts[traitID]++
	}

	scores := make(map[uint]float64, len(sums))
	for traitID, sum := range sums {
		scores[traitID] = float64(sum) / float64(7*counts[traitID]) * 100
	}
	return scores, nil
}
