package services

import (
	"context"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/models"
	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/repositories"
)

// OverviewService builds the nested center → member → loan views used by
// the read endpoints. An aggregation either completes fully or fails as a
// whole; no branch is silently omitted.
type OverviewService struct {
	centers repositories.CenterRepository
	members repositories.MemberRepository
	loans   repositories.LoanRepository
}

// NewOverviewService creates a new overview service
func NewOverviewService(
	centers repositories.CenterRepository,
	members repositories.MemberRepository,
	loans repositories.LoanRepository,
) *OverviewService {
	return &OverviewService{
		centers: centers,
		members: members,
		loans:   loans,
	}
}

// CenterMembers is one branch of the loan overview
type CenterMembers struct {
	Center  *models.CenterResponse  `json:"center"`
	Members []*models.MemberSummary `json:"members"`
}

// MemberLoans is one member branch of the payment overview
type MemberLoans struct {
	MemberCode string   `json:"memberCode"`
	MemberName string   `json:"memberName"`
	LoanIDs    []string `json:"loanIds"`
}

// CenterMemberLoans is one center branch of the payment overview
type CenterMemberLoans struct {
	Center  *models.CenterResponse `json:"center"`
	Members []*MemberLoans         `json:"members"`
}

// LoanOverview lists, for every center, its members projected to code and
// name. Admin only (enforced at the route).
func (s *OverviewService) LoanOverview(ctx context.Context) ([]*CenterMembers, error) {
	centers, err := s.centers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*CenterMembers, 0, len(centers))
	for _, center := range centers {
		members, err := s.members.ListByCenterNo(ctx, center.CenterNo)
		if err != nil {
			return nil, err
		}

		summaries := make([]*models.MemberSummary, 0, len(members))
		for _, m := range members {
			summaries = append(summaries, m.ToSummary())
		}

		out = append(out, &CenterMembers{
			Center:  center.ToResponse(),
			Members: summaries,
		})
	}
	return out, nil
}

// PaymentOverview lists, for every center, every member under it with the
// loan identifiers issued against that member. Available to any
// authenticated identity.
func (s *OverviewService) PaymentOverview(ctx context.Context) ([]*CenterMemberLoans, error) {
	centers, err := s.centers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*CenterMemberLoans, 0, len(centers))
	for _, center := range centers {
		members, err := s.members.ListByCenterNo(ctx, center.CenterNo)
		if err != nil {
			return nil, err
		}

		branches := make([]*MemberLoans, 0, len(members))
		for _, m := range members {
			loans, err := s.loans.ListByMemberCode(ctx, m.MemberCode)
			if err != nil {
				return nil, err
			}

			loanIDs := make([]string, 0, len(loans))
			for _, l := range loans {
				loanIDs = append(loanIDs, l.LoanID)
			}

			branches = append(branches, &MemberLoans{
				MemberCode: m.MemberCode,
				MemberName: m.MemberName,
				LoanIDs:    loanIDs,
			})
		}

		out = append(out, &CenterMemberLoans{
			Center:  center.ToResponse(),
			Members: branches,
		})
	}
	return out, nil
}
