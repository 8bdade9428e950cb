// Package auth authorises gRPC calls to hpcd by the role in the client's
// certificate.
package auth

import (
	"context"
	"fmt"
	"slices"

	api "github.com/nixpig/hpctools/api/v1"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
)

type Permission string

const (
	PermissionJobSubmit    Permission = "job:submit"
	PermissionJobCancel    Permission = "job:cancel"
	PermissionJobQuery     Permission = "job:query"
	PermissionSessionStart Permission = "session:start"
	PermissionSessionStop  Permission = "session:stop"
	PermissionSessionQuery Permission = "session:query"
	PermissionTunnelManage Permission = "tunnel:manage"
	PermissionTunnelQuery  Permission = "tunnel:query"
)

type Role string

const (
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

var RolePermissions = map[Role][]Permission{
	RoleOperator: {
		PermissionJobSubmit,
		PermissionJobCancel,
		PermissionJobQuery,
		PermissionSessionStart,
		PermissionSessionStop,
		PermissionSessionQuery,
		PermissionTunnelManage,
		PermissionTunnelQuery,
	},
	RoleViewer: {
		PermissionJobQuery,
		PermissionSessionQuery,
		PermissionTunnelQuery,
	},
}

// MethodPermissions is the permission required for each gRPC method. Methods
// not listed are denied.
var MethodPermissions = map[string]Permission{
	api.ClusterService_SubmitJob_FullMethodName:          PermissionJobSubmit,
	api.ClusterService_CancelJob_FullMethodName:          PermissionJobCancel,
	api.ClusterService_JobState_FullMethodName:           PermissionJobQuery,
	api.ClusterService_JobInfo_FullMethodName:            PermissionJobQuery,
	api.ClusterService_WaitForRunning_FullMethodName:     PermissionJobQuery,
	api.ClusterService_StartSession_FullMethodName:       PermissionSessionStart,
	api.ClusterService_StopSession_FullMethodName:        PermissionSessionStop,
	api.ClusterService_SessionStatus_FullMethodName:      PermissionSessionQuery,
	api.ClusterService_ListTunnels_FullMethodName:        PermissionTunnelQuery,
	api.ClusterService_KillTunnels_FullMethodName:        PermissionTunnelManage,
	api.ClusterService_StartTunnel_FullMethodName:        PermissionTunnelManage,
	api.ClusterService_StreamTunnelOutput_FullMethodName: PermissionTunnelQuery,
}

// GetClientIdentity returns the common name and first organisational unit of
// the verified client certificate.
func GetClientIdentity(ctx context.Context) (string, string, error) {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return "", "", fmt.Errorf("failed to get peer info from context")
	}

	tlsInfo, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok {
		return "", "", fmt.Errorf("failed to get TLS info from peer auth info")
	}

	if len(tlsInfo.State.VerifiedChains) == 0 ||
		len(tlsInfo.State.VerifiedChains[0]) == 0 {
		return "", "", fmt.Errorf("no verified chains in TLS info")
	}

	cert := tlsInfo.State.VerifiedChains[0][0]

	var ou string
	if len(cert.Subject.OrganizationalUnit) > 0 {
		ou = cert.Subject.OrganizationalUnit[0]
	}

	return cert.Subject.CommonName, ou, nil
}

func IsAuthorised(clientRole Role, method string) error {
	required, exists := MethodPermissions[method]
	if !exists {
		return fmt.Errorf("method %q has no permission assigned", method)
	}

	permissions, ok := RolePermissions[clientRole]
	if !ok {
		return fmt.Errorf("unknown role %q", clientRole)
	}

	if !slices.Contains(permissions, required) {
		return fmt.Errorf("role %q lacks permission %q", clientRole, required)
	}

	return nil
}
