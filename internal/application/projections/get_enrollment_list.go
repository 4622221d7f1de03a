package projections

import (
	"context"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	domainClass "github.com/yasintkd/fittrack-lite/internal/domain/class"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
)

// EnrollmentRow is an enrollment with both sides resolved to names.
type EnrollmentRow struct {
	ID         int64
	MemberName string
	ClassName  string
}

// GetEnrollmentListResult carries the enrollment page data. Members and
// classes are included for the enroll form.
type GetEnrollmentListResult struct {
	Enrollments []EnrollmentRow
	Members     []domainMember.Member
	Classes     []domainClass.Class
}

// GetEnrollmentListDeps holds dependencies for GetEnrollmentList.
type GetEnrollmentListDeps struct {
	EnrollmentStore EnrollmentStore
	MemberStore     MemberStore
	ClassStore      ClassStore
}

// QueryGetEnrollmentList lists enrollments with names resolved. Rows whose
// member or class was deleted are dropped, matching inner-join behavior.
func QueryGetEnrollmentList(ctx context.Context, deps GetEnrollmentListDeps) (GetEnrollmentListResult, error) {
	enrollments, err := deps.EnrollmentStore.List(ctx)
	if err != nil {
		return GetEnrollmentListResult{}, err
	}
	members, err := deps.MemberStore.List(ctx, member.ListFilter{})
	if err != nil {
		return GetEnrollmentListResult{}, err
	}
	classes, err := deps.ClassStore.List(ctx)
	if err != nil {
		return GetEnrollmentListResult{}, err
	}

	memberNames := make(map[int64]string, len(members))
	for _, m := range members {
		memberNames[m.ID] = m.Name
	}
	classNames := make(map[int64]string, len(classes))
	for _, c := range classes {
		classNames[c.ID] = c.Name
	}

	result := GetEnrollmentListResult{Members: members, Classes: classes}
	for _, e := range enrollments {
		memberName, okMember := memberNames[e.MemberID]
		className, okClass := classNames[e.ClassID]
		if !okMember || !okClass {
			continue
		}
		result.Enrollments = append(result.Enrollments, EnrollmentRow{
			ID:         e.ID,
			MemberName: memberName,
			ClassName:  className,
		})
	}
	return result, nil
}
