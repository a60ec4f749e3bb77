// Package constants centralizes service endpoints, wire headers, and
// transport tuning shared across the client packages.
package constants

import (
	"time"
)

// Service defaults
const (
	// DefaultBaseAPIURL is the production IronBox DX control-plane endpoint.
	// Every route below is relative to this URL. Overridable at client
	// construction for dev/staging environments.
	DefaultBaseAPIURL = "https://dx-api.ironbox.app/api/v2/"

	// APIKeyPublicIDHeader and APIKeySecretHeader carry the developer key
	// pair on every control-plane request.
	APIKeyPublicIDHeader = "ironbox_apikey_publicid"
	APIKeySecretHeader   = "ironbox_apikey_secret"
)

// Control-plane routes. All operations are HTTP POST with a JSON body;
// the server dispatches on the route, not the verb.
const (
	RouteStorageList = "dx/storage/list/api"

	RouteContainerCreate = "dx/cloud/sse/container/create/api"
	RouteContainerDelete = "dx/cloud/sse/container/delete/api"
	RouteContainerList   = "dx/cloud/sse/containers/get/api"

	RouteBlobInitialize = "dx/cloud/sse/blob/initialize/api"
	RouteBlobFinalize   = "dx/cloud/sse/blob/finalize/api"
	RouteBlobList       = "dx/cloud/sse/blob/get/api"
	RouteBlobDelete     = "dx/cloud/sse/blob/delete/api"
	RouteBlobDownload   = "dx/cloud/sse/blob/download/api"

	RouteACLUserAdd          = "dx/cloud/sse/container/acl/user/add/api"
	RouteACLSecurityGroupAdd = "dx/cloud/sse/container/acl/customsecuritygroup/add/api"
	RouteACLList             = "dx/cloud/sse/container/acl/get/api"
	RouteACLDelete           = "dx/cloud/sse/container/acl/delete/api"

	RouteNotificationsGet = "dx/cloud/sse/container/notifications/get/api"
	RouteNotificationsSet = "dx/cloud/sse/container/notifications/set/api"

	RouteContainerMetadata    = "dx/management/container/metadata/api"
	RouteContainerMetadataSet = "dx/management/container/metadata/set/api"
	RouteContainerDataTTLGet  = "dx/management/container/datattl/get/api"
	RouteContainerDataTTLSet  = "dx/management/container/datattl/set/api"
	RouteLinkAccessGet        = "dx/management/container/linkbasedaccess/get/api"
	RouteLinkAccessSet        = "dx/management/container/linkbasedaccess/set/api"

	RouteEntityCreate        = "dx/management/organization/entity/create/api"
	RouteEntityMembershipSet = "dx/management/organization/user/membership/status/set/api"
	RouteEntityList          = "dx/management/organization/entities/get/api"
	RouteEntityMetadata      = "dx/management/organization/entity/metadata/api"

	RouteSecurityGroupCreate       = "dx/management/organization/customsecuritygroup/create/api"
	RouteSecurityGroupDelete       = "dx/management/organization/customsecuritygroup/delete/api"
	RouteSecurityGroupUpdate       = "dx/management/organization/customsecuritygroup/update/api"
	RouteSecurityGroupRead         = "dx/management/organization/customsecuritygroup/read/api"
	RouteSecurityGroupMemberAdd    = "dx/management/organization/customsecuritygroup/member/add/api"
	RouteSecurityGroupMemberRemove = "dx/management/organization/customsecuritygroup/member/remove/api"
	RouteSecurityGroupList         = "dx/management/organization/customsecuritygroups/get/api"

	RouteBuiltInGroupRead         = "dx/management/organization/builtinsecuritygroup/read/api"
	RouteBuiltInGroupMemberAdd    = "dx/management/organization/builtinsecuritygroup/member/add/api"
	RouteBuiltInGroupMemberRemove = "dx/management/organization/builtinsecuritygroup/member/remove/api"
)

// Listing defaults
const (
	// DefaultBlobListTake caps a single blob-listing page server-side.
	DefaultBlobListTake = 500
)

// Transfer tuning
const (
	// TransferCopyBufferSize is the per-read buffer used when streaming blob
	// content. Smaller buffers give finer progress granularity; 32 KB matches
	// the chunking the service's reference clients report progress at.
	TransferCopyBufferSize = 32 * 1024
)

// HTTP transport tuning
const (
	HTTPDialTimeout           = 30 * time.Second
	HTTPDialKeepAlive         = 30 * time.Second
	HTTPIdleConnTimeout       = 90 * time.Second
	HTTPTLSHandshakeTimeout   = 30 * time.Second
	HTTPExpectContinueTimeout = 5 * time.Second
)

// Progress rendering
const (
	// ProgressBarWidth is the fixed character width of the console bar.
	ProgressBarWidth = 40
)
