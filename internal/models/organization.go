package models

// OrganizationEntity is a user account within the organization the API key
// pair belongs to.
type OrganizationEntity struct {
	PublicID string `json:"publicID,omitempty"`
	Email    string `json:"email"`
	Enabled  bool   `json:"enabled"`
}

// EntityCreateRequest creates an organization user. The server validates
// domain security authority, password policy, and license counts; disabled
// accounts can be created without a license.
type EntityCreateRequest struct {
	MemberEmail    string `json:"memberEmail"`
	MemberPassword string `json:"memberPassword"`
	Enabled        bool   `json:"enabled"`
}

// EntityMembershipStatusRequest enables or disables an organization member.
type EntityMembershipStatusRequest struct {
	MemberEmail string `json:"memberEmail"`
	Enabled     bool   `json:"enabled"`
}

// EntityListRequest pages through the organization's entities.
type EntityListRequest struct {
	SkipPastNumItems int `json:"skipPastNumItems"`
	TakeNumItems     int `json:"takeNumItems"`
}

// EntityList is the response of the organization entity listing route.
type EntityList struct {
	Entities []OrganizationEntity `json:"entities"`
}

// SecurityGroup is a custom (organization-defined) security group used for
// bulk ACL grants.
type SecurityGroup struct {
	PublicID     string   `json:"publicID"`
	Name         string   `json:"name"`
	Enabled      bool     `json:"enabled"`
	MemberEmails []string `json:"memberEmails,omitempty"`
}

// SecurityGroupCreateRequest creates a custom security group.
type SecurityGroupCreateRequest struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// SecurityGroupUpdateRequest renames or toggles a custom security group.
type SecurityGroupUpdateRequest struct {
	CustomSecurityGroupPublicID string `json:"customSecurityGroupPublicID"`
	Name                        string `json:"name"`
	Enabled                     bool   `json:"enabled"`
}

// SecurityGroupMemberRequest adds or removes a member of a custom security
// group.
type SecurityGroupMemberRequest struct {
	CustomSecurityGroupPublicID string `json:"customSecurityGroupPublicID"`
	MemberEmail                 string `json:"memberEmail"`
}

// SecurityGroupList is the response of the custom security group listing
// route.
type SecurityGroupList struct {
	Groups []SecurityGroup `json:"groups"`
}

// Built-in security group names the management routes accept. The
// administrators and developers groups are read-only.
const (
	BuiltInGroupSSECreators    = "sse_creators"
	BuiltInGroupSSEReaders     = "sse_readers"
	BuiltInGroupAdministrators = "administrators"
	BuiltInGroupDevelopers     = "developers"
)

// BuiltInGroup is the membership view of a built-in security group.
type BuiltInGroup struct {
	GroupName    string   `json:"groupName"`
	MemberEmails []string `json:"memberEmails"`
}

// BuiltInGroupMemberRequest adds or removes an organization member of a
// built-in security group.
type BuiltInGroupMemberRequest struct {
	GroupName   string `json:"groupName"`
	MemberEmail string `json:"memberEmail"`
}
