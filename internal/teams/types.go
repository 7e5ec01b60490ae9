package teams

// UpdateTeamRequest represents the fields an administrator can change on a team.
type UpdateTeamRequest struct {
	TeamName *string `json:"team_name,omitempty"`
	Points   *int    `json:"points,omitempty"`
}
