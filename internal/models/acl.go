package models

// ACLGrant is the rights portion shared by the user and security-group ACL
// add requests. AvailableUtc and ExpiresUtc are RFC 3339 timestamps or empty
// for "no bound".
type ACLGrant struct {
	CanRead      bool   `json:"canRead"`
	CanWrite     bool   `json:"canWrite"`
	IsAdmin      bool   `json:"isAdmin"`
	Enabled      bool   `json:"enabled"`
	AvailableUtc string `json:"availableUtc"`
	ExpiresUtc   string `json:"expiresUtc"`
}

// ACLUserAddRequest grants a user access to a container. If the email is not
// a registered organization member the server files it under the container's
// external access list, with IsAdmin forced to false.
type ACLUserAddRequest struct {
	ContainerPublicID string `json:"containerPublicID"`
	UserEmail         string `json:"userEmail"`
	ACLGrant
}

// ACLSecurityGroupAddRequest grants a custom security group access to a
// container.
type ACLSecurityGroupAddRequest struct {
	ContainerPublicID           string `json:"containerPublicID"`
	CustomSecurityGroupPublicID string `json:"customSecurityGroupPublicID"`
	ACLGrant
}

// ACLMembershipResponse identifies the membership record created by an ACL
// add. The same ID is used to delete the entry.
type ACLMembershipResponse struct {
	MembershipRecordPublicID string `json:"membershipRecordPublicID"`
}

// ACLEntry is a single access-control entry of a container. Subject fields
// are mutually exclusive: exactly one of UserEmail or
// CustomSecurityGroupPublicID is set.
type ACLEntry struct {
	MembershipPublicID          string `json:"membershipPublicID"`
	UserEmail                   string `json:"userEmail,omitempty"`
	CustomSecurityGroupPublicID string `json:"customSecurityGroupPublicID,omitempty"`
	ACLGrant
}

// ACLList is the response of the container ACL listing route.
type ACLList struct {
	ContainerPublicID string     `json:"containerPublicID"`
	Entries           []ACLEntry `json:"entries"`
}

// ACLDeleteRequest removes a membership record from a container's ACLs.
type ACLDeleteRequest struct {
	ContainerPublicID  string `json:"containerPublicID"`
	MembershipPublicID string `json:"membershipPublicID"`
}

// ContainerNotificationSettings holds the per-container notification lists:
// addresses emailed on upload and download events.
type ContainerNotificationSettings struct {
	ContainerPublicID        string   `json:"containerPublicID,omitempty"`
	UploadNotificationList   []string `json:"uploadNotificationList"`
	DownloadNotificationList []string `json:"downloadNotificationList"`
}
