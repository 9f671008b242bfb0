package types

import (
	"github.com/KirkDiggler/s3-model/internal/enum"
)

// BucketVersioningStatus is the versioning state of a bucket
type BucketVersioningStatus int

const (
	BucketVersioningStatusUnknownToSDKVersion BucketVersioningStatus = iota
	BucketVersioningStatusEnabled
	BucketVersioningStatusSuspended
)

var bucketVersioningStatusVocabulary = enum.New("BucketVersioningStatus", BucketVersioningStatusUnknownToSDKVersion, map[BucketVersioningStatus]string{
	BucketVersioningStatusEnabled:   "Enabled",
	BucketVersioningStatusSuspended: "Suspended",
})

// BucketVersioningStatusFromValue decodes an optional wire string
func BucketVersioningStatusFromValue(s *string) *BucketVersioningStatus {
	return bucketVersioningStatusVocabulary.FromWireString(s)
}

// ParseBucketVersioningStatus decodes a present wire string
func ParseBucketVersioningStatus(s string) BucketVersioningStatus {
	return bucketVersioningStatusVocabulary.Parse(s)
}

// BucketVersioningStatusKnownValues returns every symbol except BucketVersioningStatusUnknownToSDKVersion
func BucketVersioningStatusKnownValues() []BucketVersioningStatus {
	return bucketVersioningStatusVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for BucketVersioningStatusUnknownToSDKVersion
func (e BucketVersioningStatus) WireString() (string, bool) {
	return bucketVersioningStatusVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e BucketVersioningStatus) Encode() (string, error) {
	return bucketVersioningStatusVocabulary.Encode(e)
}

func (e BucketVersioningStatus) String() string {
	return symbolString(bucketVersioningStatusVocabulary, e)
}

// MFADeleteStatus reports whether MFA delete is enabled on a bucket
type MFADeleteStatus int

const (
	MFADeleteStatusUnknownToSDKVersion MFADeleteStatus = iota
	MFADeleteStatusEnabled
	MFADeleteStatusDisabled
)

var mfaDeleteStatusVocabulary = enum.New("MFADeleteStatus", MFADeleteStatusUnknownToSDKVersion, map[MFADeleteStatus]string{
	MFADeleteStatusEnabled:  "Enabled",
	MFADeleteStatusDisabled: "Disabled",
})

// MFADeleteStatusFromValue decodes an optional wire string
func MFADeleteStatusFromValue(s *string) *MFADeleteStatus {
	return mfaDeleteStatusVocabulary.FromWireString(s)
}

// ParseMFADeleteStatus decodes a present wire string
func ParseMFADeleteStatus(s string) MFADeleteStatus {
	return mfaDeleteStatusVocabulary.Parse(s)
}

// MFADeleteStatusKnownValues returns every symbol except MFADeleteStatusUnknownToSDKVersion
func MFADeleteStatusKnownValues() []MFADeleteStatus {
	return mfaDeleteStatusVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for MFADeleteStatusUnknownToSDKVersion
func (e MFADeleteStatus) WireString() (string, bool) {
	return mfaDeleteStatusVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e MFADeleteStatus) Encode() (string, error) {
	return mfaDeleteStatusVocabulary.Encode(e)
}

func (e MFADeleteStatus) String() string {
	return symbolString(mfaDeleteStatusVocabulary, e)
}

// MFADelete requests MFA delete in a versioning configuration
type MFADelete int

const (
	MFADeleteUnknownToSDKVersion MFADelete = iota
	MFADeleteEnabled
	MFADeleteDisabled
)

var mfaDeleteVocabulary = enum.New("MFADelete", MFADeleteUnknownToSDKVersion, map[MFADelete]string{
	MFADeleteEnabled:  "Enabled",
	MFADeleteDisabled: "Disabled",
})

// MFADeleteFromValue decodes an optional wire string
func MFADeleteFromValue(s *string) *MFADelete {
	return mfaDeleteVocabulary.FromWireString(s)
}

// ParseMFADelete decodes a present wire string
func ParseMFADelete(s string) MFADelete {
	return mfaDeleteVocabulary.Parse(s)
}

// MFADeleteKnownValues returns every symbol except MFADeleteUnknownToSDKVersion
func MFADeleteKnownValues() []MFADelete {
	return mfaDeleteVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for MFADeleteUnknownToSDKVersion
func (e MFADelete) WireString() (string, bool) {
	return mfaDeleteVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e MFADelete) Encode() (string, error) {
	return mfaDeleteVocabulary.Encode(e)
}

func (e MFADelete) String() string {
	return symbolString(mfaDeleteVocabulary, e)
}

// StorageClass is the storage class requested for an object
type StorageClass int

const (
	StorageClassUnknownToSDKVersion StorageClass = iota
	StorageClassStandard
	StorageClassReducedRedundancy
	StorageClassStandardIa
	StorageClassOnezoneIa
	StorageClassIntelligentTiering
	StorageClassGlacier
	StorageClassDeepArchive
	StorageClassOutposts
	StorageClassGlacierIr
	StorageClassSnow
	StorageClassExpressOnezone
)

var storageClassVocabulary = enum.New("StorageClass", StorageClassUnknownToSDKVersion, map[StorageClass]string{
	StorageClassStandard:           "STANDARD",
	StorageClassReducedRedundancy:  "REDUCED_REDUNDANCY",
	StorageClassStandardIa:         "STANDARD_IA",
	StorageClassOnezoneIa:          "ONEZONE_IA",
	StorageClassIntelligentTiering: "INTELLIGENT_TIERING",
	StorageClassGlacier:            "GLACIER",
	StorageClassDeepArchive:        "DEEP_ARCHIVE",
	StorageClassOutposts:           "OUTPOSTS",
	StorageClassGlacierIr:          "GLACIER_IR",
	StorageClassSnow:               "SNOW",
	StorageClassExpressOnezone:     "EXPRESS_ONEZONE",
})

// StorageClassFromValue decodes an optional wire string
func StorageClassFromValue(s *string) *StorageClass {
	return storageClassVocabulary.FromWireString(s)
}

// ParseStorageClass decodes a present wire string
func ParseStorageClass(s string) StorageClass {
	return storageClassVocabulary.Parse(s)
}

// StorageClassKnownValues returns every symbol except StorageClassUnknownToSDKVersion
func StorageClassKnownValues() []StorageClass {
	return storageClassVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for StorageClassUnknownToSDKVersion
func (e StorageClass) WireString() (string, bool) {
	return storageClassVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e StorageClass) Encode() (string, error) {
	return storageClassVocabulary.Encode(e)
}

func (e StorageClass) String() string {
	return symbolString(storageClassVocabulary, e)
}

// ObjectStorageClass is the storage class a listing reports for an object
type ObjectStorageClass int

const (
	ObjectStorageClassUnknownToSDKVersion ObjectStorageClass = iota
	ObjectStorageClassStandard
	ObjectStorageClassReducedRedundancy
	ObjectStorageClassStandardIa
	ObjectStorageClassOnezoneIa
	ObjectStorageClassIntelligentTiering
	ObjectStorageClassGlacier
	ObjectStorageClassDeepArchive
	ObjectStorageClassOutposts
	ObjectStorageClassGlacierIr
	ObjectStorageClassSnow
	ObjectStorageClassExpressOnezone
)

var objectStorageClassVocabulary = enum.New("ObjectStorageClass", ObjectStorageClassUnknownToSDKVersion, map[ObjectStorageClass]string{
	ObjectStorageClassStandard:           "STANDARD",
	ObjectStorageClassReducedRedundancy:  "REDUCED_REDUNDANCY",
	ObjectStorageClassStandardIa:         "STANDARD_IA",
	ObjectStorageClassOnezoneIa:          "ONEZONE_IA",
	ObjectStorageClassIntelligentTiering: "INTELLIGENT_TIERING",
	ObjectStorageClassGlacier:            "GLACIER",
	ObjectStorageClassDeepArchive:        "DEEP_ARCHIVE",
	ObjectStorageClassOutposts:           "OUTPOSTS",
	ObjectStorageClassGlacierIr:          "GLACIER_IR",
	ObjectStorageClassSnow:               "SNOW",
	ObjectStorageClassExpressOnezone:     "EXPRESS_ONEZONE",
})

// ObjectStorageClassFromValue decodes an optional wire string
func ObjectStorageClassFromValue(s *string) *ObjectStorageClass {
	return objectStorageClassVocabulary.FromWireString(s)
}

// ParseObjectStorageClass decodes a present wire string
func ParseObjectStorageClass(s string) ObjectStorageClass {
	return objectStorageClassVocabulary.Parse(s)
}

// ObjectStorageClassKnownValues returns every symbol except ObjectStorageClassUnknownToSDKVersion
func ObjectStorageClassKnownValues() []ObjectStorageClass {
	return objectStorageClassVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for ObjectStorageClassUnknownToSDKVersion
func (e ObjectStorageClass) WireString() (string, bool) {
	return objectStorageClassVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e ObjectStorageClass) Encode() (string, error) {
	return objectStorageClassVocabulary.Encode(e)
}

func (e ObjectStorageClass) String() string {
	return symbolString(objectStorageClassVocabulary, e)
}

// BucketCannedACL is a predefined grant set for a bucket
type BucketCannedACL int

const (
	BucketCannedACLUnknownToSDKVersion BucketCannedACL = iota
	BucketCannedACLPrivate
	BucketCannedACLPublicRead
	BucketCannedACLPublicReadWrite
	BucketCannedACLAuthenticatedRead
)

var bucketCannedACLVocabulary = enum.New("BucketCannedACL", BucketCannedACLUnknownToSDKVersion, map[BucketCannedACL]string{
	BucketCannedACLPrivate:           "private",
	BucketCannedACLPublicRead:        "public-read",
	BucketCannedACLPublicReadWrite:   "public-read-write",
	BucketCannedACLAuthenticatedRead: "authenticated-read",
})

// BucketCannedACLFromValue decodes an optional wire string
func BucketCannedACLFromValue(s *string) *BucketCannedACL {
	return bucketCannedACLVocabulary.FromWireString(s)
}

// ParseBucketCannedACL decodes a present wire string
func ParseBucketCannedACL(s string) BucketCannedACL {
	return bucketCannedACLVocabulary.Parse(s)
}

// BucketCannedACLKnownValues returns every symbol except BucketCannedACLUnknownToSDKVersion
func BucketCannedACLKnownValues() []BucketCannedACL {
	return bucketCannedACLVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for BucketCannedACLUnknownToSDKVersion
func (e BucketCannedACL) WireString() (string, bool) {
	return bucketCannedACLVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e BucketCannedACL) Encode() (string, error) {
	return bucketCannedACLVocabulary.Encode(e)
}

func (e BucketCannedACL) String() string {
	return symbolString(bucketCannedACLVocabulary, e)
}

// ObjectCannedACL is a predefined grant set for an object
type ObjectCannedACL int

const (
	ObjectCannedACLUnknownToSDKVersion ObjectCannedACL = iota
	ObjectCannedACLPrivate
	ObjectCannedACLPublicRead
	ObjectCannedACLPublicReadWrite
	ObjectCannedACLAuthenticatedRead
	ObjectCannedACLAwsExecRead
	ObjectCannedACLBucketOwnerRead
	ObjectCannedACLBucketOwnerFullControl
)

var objectCannedACLVocabulary = enum.New("ObjectCannedACL", ObjectCannedACLUnknownToSDKVersion, map[ObjectCannedACL]string{
	ObjectCannedACLPrivate:                "private",
	ObjectCannedACLPublicRead:             "public-read",
	ObjectCannedACLPublicReadWrite:        "public-read-write",
	ObjectCannedACLAuthenticatedRead:      "authenticated-read",
	ObjectCannedACLAwsExecRead:            "aws-exec-read",
	ObjectCannedACLBucketOwnerRead:        "bucket-owner-read",
	ObjectCannedACLBucketOwnerFullControl: "bucket-owner-full-control",
})

// ObjectCannedACLFromValue decodes an optional wire string
func ObjectCannedACLFromValue(s *string) *ObjectCannedACL {
	return objectCannedACLVocabulary.FromWireString(s)
}

// ParseObjectCannedACL decodes a present wire string
func ParseObjectCannedACL(s string) ObjectCannedACL {
	return objectCannedACLVocabulary.Parse(s)
}

// ObjectCannedACLKnownValues returns every symbol except ObjectCannedACLUnknownToSDKVersion
func ObjectCannedACLKnownValues() []ObjectCannedACL {
	return objectCannedACLVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for ObjectCannedACLUnknownToSDKVersion
func (e ObjectCannedACL) WireString() (string, bool) {
	return objectCannedACLVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e ObjectCannedACL) Encode() (string, error) {
	return objectCannedACLVocabulary.Encode(e)
}

func (e ObjectCannedACL) String() string {
	return symbolString(objectCannedACLVocabulary, e)
}

// EncodingType asks the service to encode keys in a listing
type EncodingType int

const (
	EncodingTypeUnknownToSDKVersion EncodingType = iota
	EncodingTypeURL
)

var encodingTypeVocabulary = enum.New("EncodingType", EncodingTypeUnknownToSDKVersion, map[EncodingType]string{
	EncodingTypeURL: "url",
})

// EncodingTypeFromValue decodes an optional wire string
func EncodingTypeFromValue(s *string) *EncodingType {
	return encodingTypeVocabulary.FromWireString(s)
}

// ParseEncodingType decodes a present wire string
func ParseEncodingType(s string) EncodingType {
	return encodingTypeVocabulary.Parse(s)
}

// EncodingTypeKnownValues returns every symbol except EncodingTypeUnknownToSDKVersion
func EncodingTypeKnownValues() []EncodingType {
	return encodingTypeVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for EncodingTypeUnknownToSDKVersion
func (e EncodingType) WireString() (string, bool) {
	return encodingTypeVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e EncodingType) Encode() (string, error) {
	return encodingTypeVocabulary.Encode(e)
}

func (e EncodingType) String() string {
	return symbolString(encodingTypeVocabulary, e)
}

// ServerSideEncryption is the algorithm used to encrypt an object at rest
type ServerSideEncryption int

const (
	ServerSideEncryptionUnknownToSDKVersion ServerSideEncryption = iota
	ServerSideEncryptionAes256
	ServerSideEncryptionAwsKms
	ServerSideEncryptionAwsKmsDsse
)

var serverSideEncryptionVocabulary = enum.New("ServerSideEncryption", ServerSideEncryptionUnknownToSDKVersion, map[ServerSideEncryption]string{
	ServerSideEncryptionAes256:     "AES256",
	ServerSideEncryptionAwsKms:     "aws:kms",
	ServerSideEncryptionAwsKmsDsse: "aws:kms:dsse",
})

// ServerSideEncryptionFromValue decodes an optional wire string
func ServerSideEncryptionFromValue(s *string) *ServerSideEncryption {
	return serverSideEncryptionVocabulary.FromWireString(s)
}

// ParseServerSideEncryption decodes a present wire string
func ParseServerSideEncryption(s string) ServerSideEncryption {
	return serverSideEncryptionVocabulary.Parse(s)
}

// ServerSideEncryptionKnownValues returns every symbol except ServerSideEncryptionUnknownToSDKVersion
func ServerSideEncryptionKnownValues() []ServerSideEncryption {
	return serverSideEncryptionVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for ServerSideEncryptionUnknownToSDKVersion
func (e ServerSideEncryption) WireString() (string, bool) {
	return serverSideEncryptionVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e ServerSideEncryption) Encode() (string, error) {
	return serverSideEncryptionVocabulary.Encode(e)
}

func (e ServerSideEncryption) String() string {
	return symbolString(serverSideEncryptionVocabulary, e)
}

// RequestCharged confirms the requester was charged
type RequestCharged int

const (
	RequestChargedUnknownToSDKVersion RequestCharged = iota
	RequestChargedRequester
)

var requestChargedVocabulary = enum.New("RequestCharged", RequestChargedUnknownToSDKVersion, map[RequestCharged]string{
	RequestChargedRequester: "requester",
})

// RequestChargedFromValue decodes an optional wire string
func RequestChargedFromValue(s *string) *RequestCharged {
	return requestChargedVocabulary.FromWireString(s)
}

// ParseRequestCharged decodes a present wire string
func ParseRequestCharged(s string) RequestCharged {
	return requestChargedVocabulary.Parse(s)
}

// RequestChargedKnownValues returns every symbol except RequestChargedUnknownToSDKVersion
func RequestChargedKnownValues() []RequestCharged {
	return requestChargedVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for RequestChargedUnknownToSDKVersion
func (e RequestCharged) WireString() (string, bool) {
	return requestChargedVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e RequestCharged) Encode() (string, error) {
	return requestChargedVocabulary.Encode(e)
}

func (e RequestCharged) String() string {
	return symbolString(requestChargedVocabulary, e)
}

// RequestPayer confirms the requester accepts charges
type RequestPayer int

const (
	RequestPayerUnknownToSDKVersion RequestPayer = iota
	RequestPayerRequester
)

var requestPayerVocabulary = enum.New("RequestPayer", RequestPayerUnknownToSDKVersion, map[RequestPayer]string{
	RequestPayerRequester: "requester",
})

// RequestPayerFromValue decodes an optional wire string
func RequestPayerFromValue(s *string) *RequestPayer {
	return requestPayerVocabulary.FromWireString(s)
}

// ParseRequestPayer decodes a present wire string
func ParseRequestPayer(s string) RequestPayer {
	return requestPayerVocabulary.Parse(s)
}

// RequestPayerKnownValues returns every symbol except RequestPayerUnknownToSDKVersion
func RequestPayerKnownValues() []RequestPayer {
	return requestPayerVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for RequestPayerUnknownToSDKVersion
func (e RequestPayer) WireString() (string, bool) {
	return requestPayerVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e RequestPayer) Encode() (string, error) {
	return requestPayerVocabulary.Encode(e)
}

func (e RequestPayer) String() string {
	return symbolString(requestPayerVocabulary, e)
}

// BucketLocationConstraint is the region a bucket is created in
type BucketLocationConstraint int

const (
	BucketLocationConstraintUnknownToSDKVersion BucketLocationConstraint = iota
	BucketLocationConstraintAfSouth1
	BucketLocationConstraintApEast1
	BucketLocationConstraintApNortheast1
	BucketLocationConstraintApNortheast2
	BucketLocationConstraintApNortheast3
	BucketLocationConstraintApSouth1
	BucketLocationConstraintApSouth2
	BucketLocationConstraintApSoutheast1
	BucketLocationConstraintApSoutheast2
	BucketLocationConstraintApSoutheast3
	BucketLocationConstraintCaCentral1
	BucketLocationConstraintCnNorth1
	BucketLocationConstraintCnNorthwest1
	BucketLocationConstraintEu
	BucketLocationConstraintEuCentral1
	BucketLocationConstraintEuNorth1
	BucketLocationConstraintEuSouth1
	BucketLocationConstraintEuSouth2
	BucketLocationConstraintEuWest1
	BucketLocationConstraintEuWest2
	BucketLocationConstraintEuWest3
	BucketLocationConstraintMeSouth1
	BucketLocationConstraintSaEast1
	BucketLocationConstraintUsEast2
	BucketLocationConstraintUsGovEast1
	BucketLocationConstraintUsGovWest1
	BucketLocationConstraintUsWest1
	BucketLocationConstraintUsWest2
)

var bucketLocationConstraintVocabulary = enum.New("BucketLocationConstraint", BucketLocationConstraintUnknownToSDKVersion, map[BucketLocationConstraint]string{
	BucketLocationConstraintAfSouth1:     "af-south-1",
	BucketLocationConstraintApEast1:      "ap-east-1",
	BucketLocationConstraintApNortheast1: "ap-northeast-1",
	BucketLocationConstraintApNortheast2: "ap-northeast-2",
	BucketLocationConstraintApNortheast3: "ap-northeast-3",
	BucketLocationConstraintApSouth1:     "ap-south-1",
	BucketLocationConstraintApSouth2:     "ap-south-2",
	BucketLocationConstraintApSoutheast1: "ap-southeast-1",
	BucketLocationConstraintApSoutheast2: "ap-southeast-2",
	BucketLocationConstraintApSoutheast3: "ap-southeast-3",
	BucketLocationConstraintCaCentral1:   "ca-central-1",
	BucketLocationConstraintCnNorth1:     "cn-north-1",
	BucketLocationConstraintCnNorthwest1: "cn-northwest-1",
	BucketLocationConstraintEu:           "EU",
	BucketLocationConstraintEuCentral1:   "eu-central-1",
	BucketLocationConstraintEuNorth1:     "eu-north-1",
	BucketLocationConstraintEuSouth1:     "eu-south-1",
	BucketLocationConstraintEuSouth2:     "eu-south-2",
	BucketLocationConstraintEuWest1:      "eu-west-1",
	BucketLocationConstraintEuWest2:      "eu-west-2",
	BucketLocationConstraintEuWest3:      "eu-west-3",
	BucketLocationConstraintMeSouth1:     "me-south-1",
	BucketLocationConstraintSaEast1:      "sa-east-1",
	BucketLocationConstraintUsEast2:      "us-east-2",
	BucketLocationConstraintUsGovEast1:   "us-gov-east-1",
	BucketLocationConstraintUsGovWest1:   "us-gov-west-1",
	BucketLocationConstraintUsWest1:      "us-west-1",
	BucketLocationConstraintUsWest2:      "us-west-2",
})

// BucketLocationConstraintFromValue decodes an optional wire string
func BucketLocationConstraintFromValue(s *string) *BucketLocationConstraint {
	return bucketLocationConstraintVocabulary.FromWireString(s)
}

// ParseBucketLocationConstraint decodes a present wire string
func ParseBucketLocationConstraint(s string) BucketLocationConstraint {
	return bucketLocationConstraintVocabulary.Parse(s)
}

// BucketLocationConstraintKnownValues returns every symbol except BucketLocationConstraintUnknownToSDKVersion
func BucketLocationConstraintKnownValues() []BucketLocationConstraint {
	return bucketLocationConstraintVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for BucketLocationConstraintUnknownToSDKVersion
func (e BucketLocationConstraint) WireString() (string, bool) {
	return bucketLocationConstraintVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e BucketLocationConstraint) Encode() (string, error) {
	return bucketLocationConstraintVocabulary.Encode(e)
}

func (e BucketLocationConstraint) String() string {
	return symbolString(bucketLocationConstraintVocabulary, e)
}

// ChecksumAlgorithm names an additional integrity checksum
type ChecksumAlgorithm int

const (
	ChecksumAlgorithmUnknownToSDKVersion ChecksumAlgorithm = iota
	ChecksumAlgorithmCrc32
	ChecksumAlgorithmCrc32c
	ChecksumAlgorithmSha1
	ChecksumAlgorithmSha256
	ChecksumAlgorithmCrc64nvme
)

var checksumAlgorithmVocabulary = enum.New("ChecksumAlgorithm", ChecksumAlgorithmUnknownToSDKVersion, map[ChecksumAlgorithm]string{
	ChecksumAlgorithmCrc32:     "CRC32",
	ChecksumAlgorithmCrc32c:    "CRC32C",
	ChecksumAlgorithmSha1:      "SHA1",
	ChecksumAlgorithmSha256:    "SHA256",
	ChecksumAlgorithmCrc64nvme: "CRC64NVME",
})

// ChecksumAlgorithmFromValue decodes an optional wire string
func ChecksumAlgorithmFromValue(s *string) *ChecksumAlgorithm {
	return checksumAlgorithmVocabulary.FromWireString(s)
}

// ParseChecksumAlgorithm decodes a present wire string
func ParseChecksumAlgorithm(s string) ChecksumAlgorithm {
	return checksumAlgorithmVocabulary.Parse(s)
}

// ChecksumAlgorithmKnownValues returns every symbol except ChecksumAlgorithmUnknownToSDKVersion
func ChecksumAlgorithmKnownValues() []ChecksumAlgorithm {
	return checksumAlgorithmVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for ChecksumAlgorithmUnknownToSDKVersion
func (e ChecksumAlgorithm) WireString() (string, bool) {
	return checksumAlgorithmVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e ChecksumAlgorithm) Encode() (string, error) {
	return checksumAlgorithmVocabulary.Encode(e)
}

func (e ChecksumAlgorithm) String() string {
	return symbolString(checksumAlgorithmVocabulary, e)
}

// TaggingDirective chooses whether a copy keeps or replaces the source tags
type TaggingDirective int

const (
	TaggingDirectiveUnknownToSDKVersion TaggingDirective = iota
	TaggingDirectiveCopy
	TaggingDirectiveReplace
)

var taggingDirectiveVocabulary = enum.New("TaggingDirective", TaggingDirectiveUnknownToSDKVersion, map[TaggingDirective]string{
	TaggingDirectiveCopy:    "COPY",
	TaggingDirectiveReplace: "REPLACE",
})

// TaggingDirectiveFromValue decodes an optional wire string
func TaggingDirectiveFromValue(s *string) *TaggingDirective {
	return taggingDirectiveVocabulary.FromWireString(s)
}

// ParseTaggingDirective decodes a present wire string
func ParseTaggingDirective(s string) TaggingDirective {
	return taggingDirectiveVocabulary.Parse(s)
}

// TaggingDirectiveKnownValues returns every symbol except TaggingDirectiveUnknownToSDKVersion
func TaggingDirectiveKnownValues() []TaggingDirective {
	return taggingDirectiveVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for TaggingDirectiveUnknownToSDKVersion
func (e TaggingDirective) WireString() (string, bool) {
	return taggingDirectiveVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e TaggingDirective) Encode() (string, error) {
	return taggingDirectiveVocabulary.Encode(e)
}

func (e TaggingDirective) String() string {
	return symbolString(taggingDirectiveVocabulary, e)
}

// MetadataDirective chooses whether a copy keeps or replaces the source metadata
type MetadataDirective int

const (
	MetadataDirectiveUnknownToSDKVersion MetadataDirective = iota
	MetadataDirectiveCopy
	MetadataDirectiveReplace
)

var metadataDirectiveVocabulary = enum.New("MetadataDirective", MetadataDirectiveUnknownToSDKVersion, map[MetadataDirective]string{
	MetadataDirectiveCopy:    "COPY",
	MetadataDirectiveReplace: "REPLACE",
})

// MetadataDirectiveFromValue decodes an optional wire string
func MetadataDirectiveFromValue(s *string) *MetadataDirective {
	return metadataDirectiveVocabulary.FromWireString(s)
}

// ParseMetadataDirective decodes a present wire string
func ParseMetadataDirective(s string) MetadataDirective {
	return metadataDirectiveVocabulary.Parse(s)
}

// MetadataDirectiveKnownValues returns every symbol except MetadataDirectiveUnknownToSDKVersion
func MetadataDirectiveKnownValues() []MetadataDirective {
	return metadataDirectiveVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for MetadataDirectiveUnknownToSDKVersion
func (e MetadataDirective) WireString() (string, bool) {
	return metadataDirectiveVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e MetadataDirective) Encode() (string, error) {
	return metadataDirectiveVocabulary.Encode(e)
}

func (e MetadataDirective) String() string {
	return symbolString(metadataDirectiveVocabulary, e)
}

// ArchiveStatus is the archive tier of an intelligent-tiering object
type ArchiveStatus int

const (
	ArchiveStatusUnknownToSDKVersion ArchiveStatus = iota
	ArchiveStatusArchiveAccess
	ArchiveStatusDeepArchiveAccess
)

var archiveStatusVocabulary = enum.New("ArchiveStatus", ArchiveStatusUnknownToSDKVersion, map[ArchiveStatus]string{
	ArchiveStatusArchiveAccess:     "ARCHIVE_ACCESS",
	ArchiveStatusDeepArchiveAccess: "DEEP_ARCHIVE_ACCESS",
})

// ArchiveStatusFromValue decodes an optional wire string
func ArchiveStatusFromValue(s *string) *ArchiveStatus {
	return archiveStatusVocabulary.FromWireString(s)
}

// ParseArchiveStatus decodes a present wire string
func ParseArchiveStatus(s string) ArchiveStatus {
	return archiveStatusVocabulary.Parse(s)
}

// ArchiveStatusKnownValues returns every symbol except ArchiveStatusUnknownToSDKVersion
func ArchiveStatusKnownValues() []ArchiveStatus {
	return archiveStatusVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for ArchiveStatusUnknownToSDKVersion
func (e ArchiveStatus) WireString() (string, bool) {
	return archiveStatusVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e ArchiveStatus) Encode() (string, error) {
	return archiveStatusVocabulary.Encode(e)
}

func (e ArchiveStatus) String() string {
	return symbolString(archiveStatusVocabulary, e)
}

// IntelligentTieringAccessTier is an intelligent-tiering archive tier
type IntelligentTieringAccessTier int

const (
	IntelligentTieringAccessTierUnknownToSDKVersion IntelligentTieringAccessTier = iota
	IntelligentTieringAccessTierArchiveAccess
	IntelligentTieringAccessTierDeepArchiveAccess
)

var intelligentTieringAccessTierVocabulary = enum.New("IntelligentTieringAccessTier", IntelligentTieringAccessTierUnknownToSDKVersion, map[IntelligentTieringAccessTier]string{
	IntelligentTieringAccessTierArchiveAccess:     "ARCHIVE_ACCESS",
	IntelligentTieringAccessTierDeepArchiveAccess: "DEEP_ARCHIVE_ACCESS",
})

// IntelligentTieringAccessTierFromValue decodes an optional wire string
func IntelligentTieringAccessTierFromValue(s *string) *IntelligentTieringAccessTier {
	return intelligentTieringAccessTierVocabulary.FromWireString(s)
}

// ParseIntelligentTieringAccessTier decodes a present wire string
func ParseIntelligentTieringAccessTier(s string) IntelligentTieringAccessTier {
	return intelligentTieringAccessTierVocabulary.Parse(s)
}

// IntelligentTieringAccessTierKnownValues returns every symbol except IntelligentTieringAccessTierUnknownToSDKVersion
func IntelligentTieringAccessTierKnownValues() []IntelligentTieringAccessTier {
	return intelligentTieringAccessTierVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for IntelligentTieringAccessTierUnknownToSDKVersion
func (e IntelligentTieringAccessTier) WireString() (string, bool) {
	return intelligentTieringAccessTierVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e IntelligentTieringAccessTier) Encode() (string, error) {
	return intelligentTieringAccessTierVocabulary.Encode(e)
}

func (e IntelligentTieringAccessTier) String() string {
	return symbolString(intelligentTieringAccessTierVocabulary, e)
}

// ReplicationStatus is the replication state of an object
type ReplicationStatus int

const (
	ReplicationStatusUnknownToSDKVersion ReplicationStatus = iota
	ReplicationStatusComplete
	ReplicationStatusPending
	ReplicationStatusFailed
	ReplicationStatusReplica
	ReplicationStatusCompleted
)

var replicationStatusVocabulary = enum.New("ReplicationStatus", ReplicationStatusUnknownToSDKVersion, map[ReplicationStatus]string{
	ReplicationStatusComplete:  "COMPLETE",
	ReplicationStatusPending:   "PENDING",
	ReplicationStatusFailed:    "FAILED",
	ReplicationStatusReplica:   "REPLICA",
	ReplicationStatusCompleted: "COMPLETED",
})

// ReplicationStatusFromValue decodes an optional wire string
func ReplicationStatusFromValue(s *string) *ReplicationStatus {
	return replicationStatusVocabulary.FromWireString(s)
}

// ParseReplicationStatus decodes a present wire string
func ParseReplicationStatus(s string) ReplicationStatus {
	return replicationStatusVocabulary.Parse(s)
}

// ReplicationStatusKnownValues returns every symbol except ReplicationStatusUnknownToSDKVersion
func ReplicationStatusKnownValues() []ReplicationStatus {
	return replicationStatusVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for ReplicationStatusUnknownToSDKVersion
func (e ReplicationStatus) WireString() (string, bool) {
	return replicationStatusVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e ReplicationStatus) Encode() (string, error) {
	return replicationStatusVocabulary.Encode(e)
}

func (e ReplicationStatus) String() string {
	return symbolString(replicationStatusVocabulary, e)
}

// ObjectOwnership controls ownership of objects written to a bucket
type ObjectOwnership int

const (
	ObjectOwnershipUnknownToSDKVersion ObjectOwnership = iota
	ObjectOwnershipBucketOwnerPreferred
	ObjectOwnershipObjectWriter
	ObjectOwnershipBucketOwnerEnforced
)

var objectOwnershipVocabulary = enum.New("ObjectOwnership", ObjectOwnershipUnknownToSDKVersion, map[ObjectOwnership]string{
	ObjectOwnershipBucketOwnerPreferred: "BucketOwnerPreferred",
	ObjectOwnershipObjectWriter:         "ObjectWriter",
	ObjectOwnershipBucketOwnerEnforced:  "BucketOwnerEnforced",
})

// ObjectOwnershipFromValue decodes an optional wire string
func ObjectOwnershipFromValue(s *string) *ObjectOwnership {
	return objectOwnershipVocabulary.FromWireString(s)
}

// ParseObjectOwnership decodes a present wire string
func ParseObjectOwnership(s string) ObjectOwnership {
	return objectOwnershipVocabulary.Parse(s)
}

// ObjectOwnershipKnownValues returns every symbol except ObjectOwnershipUnknownToSDKVersion
func ObjectOwnershipKnownValues() []ObjectOwnership {
	return objectOwnershipVocabulary.KnownValues()
}

// WireString returns the wire form; there is none for ObjectOwnershipUnknownToSDKVersion
func (e ObjectOwnership) WireString() (string, bool) {
	return objectOwnershipVocabulary.WireString(e)
}

// Encode returns the wire form to send, or an error for a symbol that has none
func (e ObjectOwnership) Encode() (string, error) {
	return objectOwnershipVocabulary.Encode(e)
}

func (e ObjectOwnership) String() string {
	return symbolString(objectOwnershipVocabulary, e)
}

// UnknownSymbol is how every vocabulary prints its reserved symbol
const UnknownSymbol = "UnknownToSDKVersion"

func symbolString[S comparable](v *enum.Vocabulary[S], sym S) string {
	if wire, ok := v.WireString(sym); ok {
		return wire
	}
	return UnknownSymbol
}

// Vocabularies lists every enumeration in the model, ordered by name
func Vocabularies() []enum.Descriptor {
	return []enum.Descriptor{
		archiveStatusVocabulary,
		bucketCannedACLVocabulary,
		bucketLocationConstraintVocabulary,
		bucketVersioningStatusVocabulary,
		checksumAlgorithmVocabulary,
		encodingTypeVocabulary,
		intelligentTieringAccessTierVocabulary,
		mfaDeleteVocabulary,
		mfaDeleteStatusVocabulary,
		metadataDirectiveVocabulary,
		objectCannedACLVocabulary,
		objectOwnershipVocabulary,
		objectStorageClassVocabulary,
		replicationStatusVocabulary,
		requestChargedVocabulary,
		requestPayerVocabulary,
		serverSideEncryptionVocabulary,
		storageClassVocabulary,
		taggingDirectiveVocabulary,
	}
}

// LookupVocabulary finds a vocabulary by name
func LookupVocabulary(name string) (enum.Descriptor, bool) {
	for _, d := range Vocabularies() {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}
