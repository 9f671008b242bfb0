package serviceerrors

import (
	"github.com/aws/smithy-go"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/model"
	"github.com/KirkDiggler/s3-model/internal/types"
)

// BucketAlreadyExists reports that the bucket name is taken by another account
type BucketAlreadyExists struct {
	f bucketAlreadyExistsFields
}

type bucketAlreadyExistsFields struct {
	diagnostics diagnostics
}

func (f bucketAlreadyExistsFields) clone() bucketAlreadyExistsFields {
	return bucketAlreadyExistsFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// BucketAlreadyExistsBuilder stages the fields of BucketAlreadyExists
type BucketAlreadyExistsBuilder struct {
	f bucketAlreadyExistsFields
}

func NewBucketAlreadyExistsBuilder() *BucketAlreadyExistsBuilder {
	return &BucketAlreadyExistsBuilder{}
}

func (b *BucketAlreadyExistsBuilder) WithMessage(v *string) *BucketAlreadyExistsBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *BucketAlreadyExistsBuilder) WithRequestID(v *string) *BucketAlreadyExistsBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *BucketAlreadyExistsBuilder) WithHostID(v *string) *BucketAlreadyExistsBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *BucketAlreadyExistsBuilder) Build() *BucketAlreadyExists {
	return &BucketAlreadyExists{f: b.f.clone()}
}

func (e *BucketAlreadyExists) ToBuilder() *BucketAlreadyExistsBuilder {
	return &BucketAlreadyExistsBuilder{f: e.f.clone()}
}

func (e *BucketAlreadyExists) Error() string {
	return e.f.diagnostics.format(CodeBucketAlreadyExists)
}

func (e *BucketAlreadyExists) ErrorCode() string {
	return CodeBucketAlreadyExists
}

func (e *BucketAlreadyExists) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *BucketAlreadyExists) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *BucketAlreadyExists) Category() errors.Code {
	return errors.CodeAlreadyExists
}

func (e *BucketAlreadyExists) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *BucketAlreadyExists) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *BucketAlreadyExists) Equal(other *BucketAlreadyExists) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *BucketAlreadyExists) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeBucketAlreadyExists).Sum64()
}

func (e *BucketAlreadyExists) String() string {
	return e.f.diagnostics.print("BucketAlreadyExists").String()
}

// BucketAlreadyOwnedByYou reports that the caller already owns the bucket
type BucketAlreadyOwnedByYou struct {
	f bucketAlreadyOwnedByYouFields
}

type bucketAlreadyOwnedByYouFields struct {
	diagnostics diagnostics
}

func (f bucketAlreadyOwnedByYouFields) clone() bucketAlreadyOwnedByYouFields {
	return bucketAlreadyOwnedByYouFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// BucketAlreadyOwnedByYouBuilder stages the fields of BucketAlreadyOwnedByYou
type BucketAlreadyOwnedByYouBuilder struct {
	f bucketAlreadyOwnedByYouFields
}

func NewBucketAlreadyOwnedByYouBuilder() *BucketAlreadyOwnedByYouBuilder {
	return &BucketAlreadyOwnedByYouBuilder{}
}

func (b *BucketAlreadyOwnedByYouBuilder) WithMessage(v *string) *BucketAlreadyOwnedByYouBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *BucketAlreadyOwnedByYouBuilder) WithRequestID(v *string) *BucketAlreadyOwnedByYouBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *BucketAlreadyOwnedByYouBuilder) WithHostID(v *string) *BucketAlreadyOwnedByYouBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *BucketAlreadyOwnedByYouBuilder) Build() *BucketAlreadyOwnedByYou {
	return &BucketAlreadyOwnedByYou{f: b.f.clone()}
}

func (e *BucketAlreadyOwnedByYou) ToBuilder() *BucketAlreadyOwnedByYouBuilder {
	return &BucketAlreadyOwnedByYouBuilder{f: e.f.clone()}
}

func (e *BucketAlreadyOwnedByYou) Error() string {
	return e.f.diagnostics.format(CodeBucketAlreadyOwnedByYou)
}

func (e *BucketAlreadyOwnedByYou) ErrorCode() string {
	return CodeBucketAlreadyOwnedByYou
}

func (e *BucketAlreadyOwnedByYou) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *BucketAlreadyOwnedByYou) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *BucketAlreadyOwnedByYou) Category() errors.Code {
	return errors.CodeAlreadyExists
}

func (e *BucketAlreadyOwnedByYou) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *BucketAlreadyOwnedByYou) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *BucketAlreadyOwnedByYou) Equal(other *BucketAlreadyOwnedByYou) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *BucketAlreadyOwnedByYou) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeBucketAlreadyOwnedByYou).Sum64()
}

func (e *BucketAlreadyOwnedByYou) String() string {
	return e.f.diagnostics.print("BucketAlreadyOwnedByYou").String()
}

// NoSuchBucket reports that the bucket does not exist
type NoSuchBucket struct {
	f noSuchBucketFields
}

type noSuchBucketFields struct {
	diagnostics diagnostics
}

func (f noSuchBucketFields) clone() noSuchBucketFields {
	return noSuchBucketFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// NoSuchBucketBuilder stages the fields of NoSuchBucket
type NoSuchBucketBuilder struct {
	f noSuchBucketFields
}

func NewNoSuchBucketBuilder() *NoSuchBucketBuilder {
	return &NoSuchBucketBuilder{}
}

func (b *NoSuchBucketBuilder) WithMessage(v *string) *NoSuchBucketBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *NoSuchBucketBuilder) WithRequestID(v *string) *NoSuchBucketBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *NoSuchBucketBuilder) WithHostID(v *string) *NoSuchBucketBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *NoSuchBucketBuilder) Build() *NoSuchBucket {
	return &NoSuchBucket{f: b.f.clone()}
}

func (e *NoSuchBucket) ToBuilder() *NoSuchBucketBuilder {
	return &NoSuchBucketBuilder{f: e.f.clone()}
}

func (e *NoSuchBucket) Error() string {
	return e.f.diagnostics.format(CodeNoSuchBucket)
}

func (e *NoSuchBucket) ErrorCode() string {
	return CodeNoSuchBucket
}

func (e *NoSuchBucket) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *NoSuchBucket) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *NoSuchBucket) Category() errors.Code {
	return errors.CodeNotFound
}

func (e *NoSuchBucket) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *NoSuchBucket) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *NoSuchBucket) Equal(other *NoSuchBucket) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *NoSuchBucket) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeNoSuchBucket).Sum64()
}

func (e *NoSuchBucket) String() string {
	return e.f.diagnostics.print("NoSuchBucket").String()
}

// NoSuchKey reports that the key does not exist
type NoSuchKey struct {
	f noSuchKeyFields
}

type noSuchKeyFields struct {
	diagnostics diagnostics
}

func (f noSuchKeyFields) clone() noSuchKeyFields {
	return noSuchKeyFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// NoSuchKeyBuilder stages the fields of NoSuchKey
type NoSuchKeyBuilder struct {
	f noSuchKeyFields
}

func NewNoSuchKeyBuilder() *NoSuchKeyBuilder {
	return &NoSuchKeyBuilder{}
}

func (b *NoSuchKeyBuilder) WithMessage(v *string) *NoSuchKeyBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *NoSuchKeyBuilder) WithRequestID(v *string) *NoSuchKeyBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *NoSuchKeyBuilder) WithHostID(v *string) *NoSuchKeyBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *NoSuchKeyBuilder) Build() *NoSuchKey {
	return &NoSuchKey{f: b.f.clone()}
}

func (e *NoSuchKey) ToBuilder() *NoSuchKeyBuilder {
	return &NoSuchKeyBuilder{f: e.f.clone()}
}

func (e *NoSuchKey) Error() string {
	return e.f.diagnostics.format(CodeNoSuchKey)
}

func (e *NoSuchKey) ErrorCode() string {
	return CodeNoSuchKey
}

func (e *NoSuchKey) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *NoSuchKey) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *NoSuchKey) Category() errors.Code {
	return errors.CodeNotFound
}

func (e *NoSuchKey) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *NoSuchKey) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *NoSuchKey) Equal(other *NoSuchKey) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *NoSuchKey) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeNoSuchKey).Sum64()
}

func (e *NoSuchKey) String() string {
	return e.f.diagnostics.print("NoSuchKey").String()
}

// NoSuchUpload reports that the multipart upload does not exist
type NoSuchUpload struct {
	f noSuchUploadFields
}

type noSuchUploadFields struct {
	diagnostics diagnostics
}

func (f noSuchUploadFields) clone() noSuchUploadFields {
	return noSuchUploadFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// NoSuchUploadBuilder stages the fields of NoSuchUpload
type NoSuchUploadBuilder struct {
	f noSuchUploadFields
}

func NewNoSuchUploadBuilder() *NoSuchUploadBuilder {
	return &NoSuchUploadBuilder{}
}

func (b *NoSuchUploadBuilder) WithMessage(v *string) *NoSuchUploadBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *NoSuchUploadBuilder) WithRequestID(v *string) *NoSuchUploadBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *NoSuchUploadBuilder) WithHostID(v *string) *NoSuchUploadBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *NoSuchUploadBuilder) Build() *NoSuchUpload {
	return &NoSuchUpload{f: b.f.clone()}
}

func (e *NoSuchUpload) ToBuilder() *NoSuchUploadBuilder {
	return &NoSuchUploadBuilder{f: e.f.clone()}
}

func (e *NoSuchUpload) Error() string {
	return e.f.diagnostics.format(CodeNoSuchUpload)
}

func (e *NoSuchUpload) ErrorCode() string {
	return CodeNoSuchUpload
}

func (e *NoSuchUpload) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *NoSuchUpload) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *NoSuchUpload) Category() errors.Code {
	return errors.CodeNotFound
}

func (e *NoSuchUpload) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *NoSuchUpload) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *NoSuchUpload) Equal(other *NoSuchUpload) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *NoSuchUpload) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeNoSuchUpload).Sum64()
}

func (e *NoSuchUpload) String() string {
	return e.f.diagnostics.print("NoSuchUpload").String()
}

// NoSuchTagSet reports that the bucket has no tag set
type NoSuchTagSet struct {
	f noSuchTagSetFields
}

type noSuchTagSetFields struct {
	diagnostics diagnostics
}

func (f noSuchTagSetFields) clone() noSuchTagSetFields {
	return noSuchTagSetFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// NoSuchTagSetBuilder stages the fields of NoSuchTagSet
type NoSuchTagSetBuilder struct {
	f noSuchTagSetFields
}

func NewNoSuchTagSetBuilder() *NoSuchTagSetBuilder {
	return &NoSuchTagSetBuilder{}
}

func (b *NoSuchTagSetBuilder) WithMessage(v *string) *NoSuchTagSetBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *NoSuchTagSetBuilder) WithRequestID(v *string) *NoSuchTagSetBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *NoSuchTagSetBuilder) WithHostID(v *string) *NoSuchTagSetBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *NoSuchTagSetBuilder) Build() *NoSuchTagSet {
	return &NoSuchTagSet{f: b.f.clone()}
}

func (e *NoSuchTagSet) ToBuilder() *NoSuchTagSetBuilder {
	return &NoSuchTagSetBuilder{f: e.f.clone()}
}

func (e *NoSuchTagSet) Error() string {
	return e.f.diagnostics.format(CodeNoSuchTagSet)
}

func (e *NoSuchTagSet) ErrorCode() string {
	return CodeNoSuchTagSet
}

func (e *NoSuchTagSet) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *NoSuchTagSet) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *NoSuchTagSet) Category() errors.Code {
	return errors.CodeNotFound
}

func (e *NoSuchTagSet) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *NoSuchTagSet) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *NoSuchTagSet) Equal(other *NoSuchTagSet) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *NoSuchTagSet) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeNoSuchTagSet).Sum64()
}

func (e *NoSuchTagSet) String() string {
	return e.f.diagnostics.print("NoSuchTagSet").String()
}

// InvalidObjectState reports that the object is archived and must be restored first
type InvalidObjectState struct {
	f invalidObjectStateFields
}

type invalidObjectStateFields struct {
	diagnostics  diagnostics
	storageClass *types.StorageClass
	accessTier   *types.IntelligentTieringAccessTier
}

func (f invalidObjectStateFields) clone() invalidObjectStateFields {
	return invalidObjectStateFields{
		diagnostics:  f.diagnostics.clone(),
		storageClass: model.ClonePtr(f.storageClass),
		accessTier:   model.ClonePtr(f.accessTier),
	}
}

// InvalidObjectStateBuilder stages the fields of InvalidObjectState
type InvalidObjectStateBuilder struct {
	f invalidObjectStateFields
}

func NewInvalidObjectStateBuilder() *InvalidObjectStateBuilder {
	return &InvalidObjectStateBuilder{}
}

func (b *InvalidObjectStateBuilder) WithMessage(v *string) *InvalidObjectStateBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *InvalidObjectStateBuilder) WithRequestID(v *string) *InvalidObjectStateBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *InvalidObjectStateBuilder) WithHostID(v *string) *InvalidObjectStateBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *InvalidObjectStateBuilder) WithStorageClass(v *types.StorageClass) *InvalidObjectStateBuilder {
	b.f.storageClass = model.ClonePtr(v)
	return b
}

func (b *InvalidObjectStateBuilder) WithAccessTier(v *types.IntelligentTieringAccessTier) *InvalidObjectStateBuilder {
	b.f.accessTier = model.ClonePtr(v)
	return b
}

func (b *InvalidObjectStateBuilder) Build() *InvalidObjectState {
	return &InvalidObjectState{f: b.f.clone()}
}

func (e *InvalidObjectState) ToBuilder() *InvalidObjectStateBuilder {
	return &InvalidObjectStateBuilder{f: e.f.clone()}
}

func (e *InvalidObjectState) Error() string {
	return e.f.diagnostics.format(CodeInvalidObjectState)
}

func (e *InvalidObjectState) ErrorCode() string {
	return CodeInvalidObjectState
}

func (e *InvalidObjectState) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *InvalidObjectState) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *InvalidObjectState) Category() errors.Code {
	return errors.CodeFailedPrecondition
}

func (e *InvalidObjectState) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *InvalidObjectState) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

func (e *InvalidObjectState) StorageClass() (types.StorageClass, bool) {
	return model.Get(e.f.storageClass)
}

func (e *InvalidObjectState) AccessTier() (types.IntelligentTieringAccessTier, bool) {
	return model.Get(e.f.accessTier)
}

// Equal reports whether e and other carry the same diagnostics
func (e *InvalidObjectState) Equal(other *InvalidObjectState) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics) &&
		model.EqualPtr(e.f.storageClass, other.f.storageClass) &&
		model.EqualPtr(e.f.accessTier, other.f.accessTier)
}

func (e *InvalidObjectState) Hash() uint64 {
	if e == nil {
		return 0
	}
	h := e.f.diagnostics.hash(CodeInvalidObjectState)
	model.HashEnum(h, e.f.storageClass)
	model.HashEnum(h, e.f.accessTier)
	return h.Sum64()
}

func (e *InvalidObjectState) String() string {
	return e.f.diagnostics.print("InvalidObjectState").
		Field("StorageClass", e.f.storageClass).
		Field("AccessTier", e.f.accessTier).
		String()
}

// ObjectAlreadyInActiveTierError reports that a restore was requested for an object that is already active
type ObjectAlreadyInActiveTierError struct {
	f objectAlreadyInActiveTierErrorFields
}

type objectAlreadyInActiveTierErrorFields struct {
	diagnostics diagnostics
}

func (f objectAlreadyInActiveTierErrorFields) clone() objectAlreadyInActiveTierErrorFields {
	return objectAlreadyInActiveTierErrorFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// ObjectAlreadyInActiveTierErrorBuilder stages the fields of ObjectAlreadyInActiveTierError
type ObjectAlreadyInActiveTierErrorBuilder struct {
	f objectAlreadyInActiveTierErrorFields
}

func NewObjectAlreadyInActiveTierErrorBuilder() *ObjectAlreadyInActiveTierErrorBuilder {
	return &ObjectAlreadyInActiveTierErrorBuilder{}
}

func (b *ObjectAlreadyInActiveTierErrorBuilder) WithMessage(v *string) *ObjectAlreadyInActiveTierErrorBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *ObjectAlreadyInActiveTierErrorBuilder) WithRequestID(v *string) *ObjectAlreadyInActiveTierErrorBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *ObjectAlreadyInActiveTierErrorBuilder) WithHostID(v *string) *ObjectAlreadyInActiveTierErrorBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *ObjectAlreadyInActiveTierErrorBuilder) Build() *ObjectAlreadyInActiveTierError {
	return &ObjectAlreadyInActiveTierError{f: b.f.clone()}
}

func (e *ObjectAlreadyInActiveTierError) ToBuilder() *ObjectAlreadyInActiveTierErrorBuilder {
	return &ObjectAlreadyInActiveTierErrorBuilder{f: e.f.clone()}
}

func (e *ObjectAlreadyInActiveTierError) Error() string {
	return e.f.diagnostics.format(CodeObjectAlreadyInActiveTierError)
}

func (e *ObjectAlreadyInActiveTierError) ErrorCode() string {
	return CodeObjectAlreadyInActiveTierError
}

func (e *ObjectAlreadyInActiveTierError) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *ObjectAlreadyInActiveTierError) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *ObjectAlreadyInActiveTierError) Category() errors.Code {
	return errors.CodeFailedPrecondition
}

func (e *ObjectAlreadyInActiveTierError) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *ObjectAlreadyInActiveTierError) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *ObjectAlreadyInActiveTierError) Equal(other *ObjectAlreadyInActiveTierError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *ObjectAlreadyInActiveTierError) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeObjectAlreadyInActiveTierError).Sum64()
}

func (e *ObjectAlreadyInActiveTierError) String() string {
	return e.f.diagnostics.print("ObjectAlreadyInActiveTierError").String()
}

// ObjectNotInActiveTierError reports that the copy source is archived
type ObjectNotInActiveTierError struct {
	f objectNotInActiveTierErrorFields
}

type objectNotInActiveTierErrorFields struct {
	diagnostics diagnostics
}

func (f objectNotInActiveTierErrorFields) clone() objectNotInActiveTierErrorFields {
	return objectNotInActiveTierErrorFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// ObjectNotInActiveTierErrorBuilder stages the fields of ObjectNotInActiveTierError
type ObjectNotInActiveTierErrorBuilder struct {
	f objectNotInActiveTierErrorFields
}

func NewObjectNotInActiveTierErrorBuilder() *ObjectNotInActiveTierErrorBuilder {
	return &ObjectNotInActiveTierErrorBuilder{}
}

func (b *ObjectNotInActiveTierErrorBuilder) WithMessage(v *string) *ObjectNotInActiveTierErrorBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *ObjectNotInActiveTierErrorBuilder) WithRequestID(v *string) *ObjectNotInActiveTierErrorBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *ObjectNotInActiveTierErrorBuilder) WithHostID(v *string) *ObjectNotInActiveTierErrorBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *ObjectNotInActiveTierErrorBuilder) Build() *ObjectNotInActiveTierError {
	return &ObjectNotInActiveTierError{f: b.f.clone()}
}

func (e *ObjectNotInActiveTierError) ToBuilder() *ObjectNotInActiveTierErrorBuilder {
	return &ObjectNotInActiveTierErrorBuilder{f: e.f.clone()}
}

func (e *ObjectNotInActiveTierError) Error() string {
	return e.f.diagnostics.format(CodeObjectNotInActiveTierError)
}

func (e *ObjectNotInActiveTierError) ErrorCode() string {
	return CodeObjectNotInActiveTierError
}

func (e *ObjectNotInActiveTierError) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *ObjectNotInActiveTierError) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *ObjectNotInActiveTierError) Category() errors.Code {
	return errors.CodeFailedPrecondition
}

func (e *ObjectNotInActiveTierError) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *ObjectNotInActiveTierError) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *ObjectNotInActiveTierError) Equal(other *ObjectNotInActiveTierError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *ObjectNotInActiveTierError) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeObjectNotInActiveTierError).Sum64()
}

func (e *ObjectNotInActiveTierError) String() string {
	return e.f.diagnostics.print("ObjectNotInActiveTierError").String()
}

// AccessDenied reports that the caller may not perform the operation
type AccessDenied struct {
	f accessDeniedFields
}

type accessDeniedFields struct {
	diagnostics diagnostics
}

func (f accessDeniedFields) clone() accessDeniedFields {
	return accessDeniedFields{
		diagnostics: f.diagnostics.clone(),
	}
}

// AccessDeniedBuilder stages the fields of AccessDenied
type AccessDeniedBuilder struct {
	f accessDeniedFields
}

func NewAccessDeniedBuilder() *AccessDeniedBuilder {
	return &AccessDeniedBuilder{}
}

func (b *AccessDeniedBuilder) WithMessage(v *string) *AccessDeniedBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *AccessDeniedBuilder) WithRequestID(v *string) *AccessDeniedBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *AccessDeniedBuilder) WithHostID(v *string) *AccessDeniedBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *AccessDeniedBuilder) Build() *AccessDenied {
	return &AccessDenied{f: b.f.clone()}
}

func (e *AccessDenied) ToBuilder() *AccessDeniedBuilder {
	return &AccessDeniedBuilder{f: e.f.clone()}
}

func (e *AccessDenied) Error() string {
	return e.f.diagnostics.format(CodeAccessDenied)
}

func (e *AccessDenied) ErrorCode() string {
	return CodeAccessDenied
}

func (e *AccessDenied) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *AccessDenied) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

func (e *AccessDenied) Category() errors.Code {
	return errors.CodePermissionDenied
}

func (e *AccessDenied) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *AccessDenied) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

// Equal reports whether e and other carry the same diagnostics
func (e *AccessDenied) Equal(other *AccessDenied) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *AccessDenied) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash(CodeAccessDenied).Sum64()
}

func (e *AccessDenied) String() string {
	return e.f.diagnostics.print("AccessDenied").String()
}
