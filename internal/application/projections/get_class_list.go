package projections

import (
	"context"

	domainClass "github.com/yasintkd/fittrack-lite/internal/domain/class"
	domainTrainer "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// ClassWithTrainer is a class row annotated with its trainer's name.
type ClassWithTrainer struct {
	domainClass.Class
	TrainerName string
}

// GetClassListResult carries the class list page data. Trainers are included
// for the add-class form.
type GetClassListResult struct {
	Classes  []ClassWithTrainer
	Trainers []domainTrainer.Trainer
}

// GetClassListDeps holds dependencies for GetClassList.
type GetClassListDeps struct {
	ClassStore   ClassStore
	TrainerStore TrainerStore
}

// QueryGetClassList lists all classes with trainer names resolved. A dangling
// trainer_id leaves the name empty.
func QueryGetClassList(ctx context.Context, deps GetClassListDeps) (GetClassListResult, error) {
	classes, err := deps.ClassStore.List(ctx)
	if err != nil {
		return GetClassListResult{}, err
	}
	trainers, err := deps.TrainerStore.List(ctx)
	if err != nil {
		return GetClassListResult{}, err
	}

	names := make(map[int64]string, len(trainers))
	for _, t := range trainers {
		names[t.ID] = t.Name
	}

	result := GetClassListResult{Trainers: trainers}
	for _, c := range classes {
		result.Classes = append(result.Classes, ClassWithTrainer{
			Class:       c,
			TrainerName: names[c.TrainerID],
		})
	}
	return result, nil
}
