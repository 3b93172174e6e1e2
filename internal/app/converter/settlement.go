package converter

import (
	"slices"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/google/uuid"

	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	"github.com/avGenie/go-coffee-settlement/internal/app/model"
)

// ConvertSettlementsToResponses orders the responses by user so that output is stable.
func ConvertSettlementsToResponses(settlements entity.Settlements) model.SettlementResponses {
	users := make([]entity.UserID, 0, len(settlements))
	for user := range settlements {
		users = append(users, user)
	}
	slices.Sort(users)

	responses := make(model.SettlementResponses, 0, len(users))
	for _, user := range users {
		settlement := settlements[user]
		responses = append(responses, model.SettlementResponse{
			User:       user.String(),
			AmountPaid: settlement.AmountPaid,
			AmountOwed: settlement.AmountOwed,
		})
	}

	return responses
}

func ConvertSettlementsToReport(runID uuid.UUID, generatedAt time.Time, settlements entity.Settlements) model.SettlementReport {
	return model.SettlementReport{
		RunID:       runID.String(),
		GeneratedAt: carbon.CreateFromStdTime(generatedAt).ToRfc3339String(),
		Settlements: ConvertSettlementsToResponses(settlements),
	}
}
