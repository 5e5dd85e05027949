package domain

import "github.com/couchcryptid/route-grade-etl/internal/grade"

// GradeClassifier places a grade token on the ordinal axis.
// *grade.Engine satisfies it; the pipeline may wrap the engine in a cache.
type GradeClassifier interface {
	Classify(token string, discipline grade.Discipline) grade.Result
}
