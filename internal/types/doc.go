// Package types holds the request, response and shared value types of the
// object-storage model together with their enumerations.
//
// Every value type is immutable. It is created through its builder:
//
//	req := types.NewListObjectsV2RequestBuilder().
//		WithBucket(aws.String("logs")).
//		WithPrefix(aws.String("2024/")).
//		Build()
//
// and modified by copying it through ToBuilder. Every field is optional;
// accessors return the value and whether it is present. Slices and maps
// returned by accessors are copies.
//
// Enumerations decode unknown wire strings to their UnknownToSDKVersion
// symbol, so a switch over one must keep a default arm.
//
// Operations without output use empty marker types such as
// DeleteBucketResponse, which are constructed directly.
package types
